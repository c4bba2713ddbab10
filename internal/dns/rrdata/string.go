package rrdata

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String renders a one-line, human-readable summary of the RDATA suitable
// for logging. It is not a zone-file presentation format: field order and
// punctuation are chosen for readability, not round-tripping.

func (a *A) String() string {
	return a.Address.String()
}

func (r *NS) String() string { return r.NSDName }

func (r *MD) String() string { return r.MADName }

func (r *MF) String() string { return r.MADName }

func (r *CNAME) String() string { return r.CName }

func (r *SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", r.MName, r.RName, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

func (r *MB) String() string { return r.MADName }

func (r *MG) String() string { return r.MGMName }

func (r *MR) String() string { return r.NewName }

func (r *NULL) String() string {
	return hex.EncodeToString(r.Data)
}

func (r *WKS) String() string {
	return fmt.Sprintf("%s proto=%d bitmap=%dB", r.Address, r.Protocol, len(r.Bitmap))
}

func (r *PTR) String() string { return r.PTRDName }

func (r *HINFO) String() string {
	return fmt.Sprintf("%q %q", r.CPU, r.OS)
}

func (r *MINFO) String() string {
	return fmt.Sprintf("%s %s", r.RMailBX, r.EMailBX)
}

func (r *MX) String() string {
	return fmt.Sprintf("%d %s", r.Preference, r.Exchange)
}

func (r *TXT) String() string {
	return strings.Join(r.Strings, " ")
}

func (r *AAAA) String() string {
	return r.Address.String()
}

func (r *SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Priority, r.Weight, r.Port, r.Target)
}

func (r *OPT) String() string {
	codes := make([]string, len(r.Options))
	for i, o := range r.Options {
		codes[i] = fmt.Sprintf("%d(%dB)", o.Code, len(o.Data))
	}
	return "opts=[" + strings.Join(codes, ",") + "]"
}

func (r *CAA) String() string {
	return fmt.Sprintf("%d %s %q", r.Flags, r.Tag, r.Value)
}

func (r *Unknown) String() string {
	return fmt.Sprintf("TYPE%d %s", uint16(r.RRType), hex.EncodeToString(r.Data))
}
