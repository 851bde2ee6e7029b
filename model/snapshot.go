package model

// HeaderSize is the size of the Gnutella message header in bytes. Byte
// counters include it; the payload-only view subtracts it per packet.
const HeaderSize = 23

// FlowcDepth is the number of TTL / hop-count buckets tracked for
// flow-control events.
const FlowcDepth = 9

// FlowTable holds one counter per message type, with the running sum in
// the MsgTotal slot.
type FlowTable [MsgTypeCount]uint64

// Flows groups the per-lifecycle counter tables of one unit (packets or
// bytes).
type Flows struct {
	Received  FlowTable
	GenQueued FlowTable
	Generated FlowTable
	Dropped   FlowTable
	Expired   FlowTable
	Queued    FlowTable
	Relayed   FlowTable

	FlowcTTL  [FlowcDepth]FlowTable
	FlowcHops [FlowcDepth]FlowTable
}

// Snapshot is a coherent point-in-time copy of the full counter cube.
// All fields are fixed-size arrays, so plain assignment is a deep copy
// and a Snapshot handed out by a provider is immutable from the
// consumer's point of view.
type Snapshot struct {
	Pkg  Flows
	Byte Flows

	DropReason [DropReasonCount]FlowTable
	General    [GeneralKindCount]uint64
}
