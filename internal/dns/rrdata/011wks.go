package rrdata

import (
	"net"

	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// WKS holds an RFC 1035 §3.4.2 well-known-service record: an address, an
// IP protocol number, and a bitmap of the ports offered under it.
type WKS struct {
	Address  net.IP
	Protocol uint8
	Bitmap   []byte
}

func (r *WKS) Type() types.RRType { return types.WKS }

func (r *WKS) Encode(w *wire.Writer, _ *name.Compressor) error {
	if !isIPv4(r.Address) {
		return ErrInvalidIPv4
	}
	w.WriteBytes(r.Address.To4())
	w.WriteUint8(r.Protocol)
	w.WriteBytes(r.Bitmap)
	return nil
}

func decodeWKS(r *wire.Reader, rdlength int) (*WKS, error) {
	if rdlength < 5 {
		return nil, ErrMalformedRData
	}
	addr, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	proto, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	bitmap, err := r.ReadBytes(rdlength - 5)
	if err != nil {
		return nil, err
	}
	return &WKS{
		Address:  net.IP(append([]byte(nil), addr...)),
		Protocol: proto,
		Bitmap:   append([]byte(nil), bitmap...),
	}, nil
}
