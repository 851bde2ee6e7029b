package gnet

import (
	"math/rand"

	"gnutop/model"
)

// Simulator feeds a Stats accumulator with synthetic Gnutella traffic so
// the console can be exercised without a live servent core.
type Simulator struct {
	rng   *rand.Rand
	stats *Stats
	hsep  func(hops int, nodes, files, kib uint64)
}

// NewSimulator returns a simulator writing into stats. hsep, if non-nil,
// receives horizon deltas (hop distance plus node/file/KiB increments).
func NewSimulator(seed int64, stats *Stats, hsep func(hops int, nodes, files, kib uint64)) *Simulator {
	return &Simulator{
		rng:   rand.New(rand.NewSource(seed)),
		stats: stats,
		hsep:  hsep,
	}
}

// weighted mix of message kinds roughly matching idle Gnutella traffic
var simMix = []model.MsgType{
	model.MsgPing, model.MsgPing,
	model.MsgPong, model.MsgPong, model.MsgPong,
	model.MsgQuery, model.MsgQuery, model.MsgQuery, model.MsgQuery,
	model.MsgQueryHit,
	model.MsgPush,
	model.MsgQRP,
	model.MsgVendorSpec,
}

func (s *Simulator) msgSize(t model.MsgType) uint64 {
	switch t {
	case model.MsgPing:
		return model.HeaderSize
	case model.MsgPong:
		return model.HeaderSize + 14
	case model.MsgQuery:
		return model.HeaderSize + 2 + uint64(s.rng.Intn(40))
	case model.MsgQueryHit:
		return model.HeaderSize + 34 + uint64(s.rng.Intn(600))
	case model.MsgPush:
		return model.HeaderSize + 26
	default:
		return model.HeaderSize + uint64(s.rng.Intn(128))
	}
}

func (s *Simulator) transport() Transport {
	if s.rng.Intn(4) == 0 {
		return TransportUDP
	}
	return TransportTCP
}

// Step emits one burst of synthetic events.
func (s *Simulator) Step() {
	n := 20 + s.rng.Intn(60)
	for i := 0; i < n; i++ {
		t := simMix[s.rng.Intn(len(simMix))]
		via := s.transport()
		size := s.msgSize(t)

		s.stats.Received(via, t, size)

		switch s.rng.Intn(10) {
		case 0:
			s.stats.Dropped(via, t, s.dropReason(t), size)
		case 1:
			s.stats.Expired(via, t, size)
		case 2, 3:
			s.stats.Queued(via, t, size)
		default:
			s.stats.Relayed(via, t, size)
		}

		if s.rng.Intn(25) == 0 {
			s.stats.FlowControlled(via, t, 1+s.rng.Intn(6), s.rng.Intn(7), size)
		}
	}

	for i := 0; i < 3+s.rng.Intn(5); i++ {
		t := simMix[s.rng.Intn(len(simMix))]
		via := s.transport()
		size := s.msgSize(t)
		s.stats.Generated(via, t, size)
		if s.rng.Intn(5) == 0 {
			s.stats.GenQueued(via, t, size)
		}
	}

	if s.rng.Intn(3) == 0 {
		s.stats.AddGeneral(model.GeneralLocalSearches, uint64(1+s.rng.Intn(3)))
	}
	if s.rng.Intn(6) == 0 {
		s.stats.AddGeneral(model.GeneralLocalHits, 1)
	}
	if s.rng.Intn(4) == 0 {
		saved := uint64(4 + s.rng.Intn(60))
		s.stats.AddGeneral(model.GeneralCompactedQueries, 1)
		s.stats.AddGeneral(model.GeneralCompactSavings, saved)
	}
	if s.rng.Intn(8) == 0 {
		s.stats.AddGeneral(model.GeneralUTF8Queries, 1)
	}
	if s.rng.Intn(12) == 0 {
		s.stats.AddGeneral(model.GeneralSHA1Queries, 1)
	}
	if s.rng.Intn(40) == 0 {
		s.stats.AddGeneral(model.GeneralRoutingErrors, 1)
	}

	if s.hsep != nil && s.rng.Intn(4) == 0 {
		hops := 1 + s.rng.Intn(7)
		s.hsep(hops,
			uint64(s.rng.Intn(3)),
			uint64(s.rng.Intn(40)),
			uint64(s.rng.Intn(2048)))
	}
}

func (s *Simulator) dropReason(t model.MsgType) model.DropReason {
	common := []model.DropReason{
		model.DropMaxTTLExceeded,
		model.DropDuplicate,
		model.DropFlowControl,
		model.DropNoRoute,
		model.DropRouteLost,
		model.DropHardTTLLimit,
	}
	if t == model.MsgQuery && s.rng.Intn(3) == 0 {
		return model.DropQueryTooShort
	}
	return common[s.rng.Intn(len(common))]
}
