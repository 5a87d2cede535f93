package client

import (
	"net"
	"net/netip"
	"strconv"

	"apex/internal/models"
)

const realIPHeader = "x-real-ip"

type Identity struct {
	Host string
	Port int
}

// String renders the identity as host:port. An empty port is left out.
func (id Identity) String() string {
	if id.Port == 0 {
		return id.Host
	}
	return net.JoinHostPort(id.Host, strconv.Itoa(id.Port))
}

// Resolve returns the peer address, or the x-real-ip header value when the
// peer is a private IPv4 address and so presumably a reverse proxy. The
// header value is not validated.
func Resolve(peer net.Addr, headers models.Headers) Identity {
	ap, ok := addrPort(peer)
	if !ok {
		if peer == nil {
			return Identity{}
		}
		return Identity{Host: peer.String()}
	}

	ip := ap.Addr().Unmap()
	if ip.Is4() && ip.IsPrivate() {
		if realIP, ok := headers[realIPHeader]; ok {
			return Identity{Host: realIP, Port: int(ap.Port())}
		}
	}

	return Identity{Host: ip.String(), Port: int(ap.Port())}
}

func addrPort(peer net.Addr) (netip.AddrPort, bool) {
	switch a := peer.(type) {
	case *net.TCPAddr:
		return a.AddrPort(), true
	case nil:
		return netip.AddrPort{}, false
	}

	ap, err := netip.ParseAddrPort(peer.String())
	if err != nil {
		return netip.AddrPort{}, false
	}
	return ap, true
}
