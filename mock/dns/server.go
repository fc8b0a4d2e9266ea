package dns

import (
	"net"

	"github.com/miekg/dns"
)

// StartServer starts a miekg UDP DNS server on an ephemeral loopback port and only
// returns once the server is accepting queries. The returned address is suitable for
// passing to a resolver as its server.
func StartServer(h dns.Handler) (srv *dns.Server, addr string) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		panic("Setup of mock listener failed:" + err.Error())
	}
	srv = &dns.Server{PacketConn: pc, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		close(hasStarted)
	}

	go func() {
		srv.ActivateAndServe() // Returns an error on Shutdown which is of no interest
	}()

	<-hasStarted

	return srv, pc.LocalAddr().String()
}
