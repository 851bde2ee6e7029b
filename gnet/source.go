package gnet

import (
	"fmt"

	"gnutop/model"
)

// Provider produces self-consistent counter snapshots on demand. All
// three getters are synchronous and non-failing; implementations must
// guarantee no torn reads (copy under a lock or equivalent).
type Provider interface {
	Full() model.Snapshot
	TCP() model.Snapshot
	UDP() model.Snapshot
}

// Source selects which transport slice of the counters a snapshot covers.
type Source int

const (
	SourceFull Source = iota
	SourceTCPOnly
	SourceUDPOnly
	sourceCount
)

func (s Source) String() string {
	switch s {
	case SourceFull:
		return "full"
	case SourceTCPOnly:
		return "tcp"
	case SourceUDPOnly:
		return "udp"
	}
	return "invalid"
}

// Next returns the next source in the cycle full -> tcp -> udp.
func (s Source) Next() Source {
	return (s + 1) % sourceCount
}

// ParseSource maps a flag value to a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "full", "":
		return SourceFull, nil
	case "tcp":
		return SourceTCPOnly, nil
	case "udp":
		return SourceUDPOnly, nil
	}
	return 0, fmt.Errorf("unknown stats source %q (want full, tcp or udp)", s)
}

// Snap reads one snapshot from p according to src. The enumeration is
// closed: any other value is a programming error.
func Snap(p Provider, src Source) model.Snapshot {
	switch src {
	case SourceFull:
		return p.Full()
	case SourceTCPOnly:
		return p.TCP()
	case SourceUDPOnly:
		return p.UDP()
	}
	panic(fmt.Sprintf("gnet: invalid stats source %d", int(src)))
}
