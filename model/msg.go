package model

// MsgType identifies a Gnutella message kind. The enumeration is ordered;
// MsgTotal is the synthetic bucket holding the sum over all other kinds and
// serves as the denominator for percentage views.
type MsgType int

const (
	MsgUnknown MsgType = iota
	MsgPing
	MsgPong
	MsgBye
	MsgQRP
	MsgVendorSpec
	MsgVendorStd
	MsgPush
	MsgQuery
	MsgQueryHit
	MsgTotal
	MsgTypeCount
)

var msgTypeNames = [MsgTypeCount]string{
	"Unknown",
	"Ping",
	"Pong",
	"Bye",
	"QRP",
	"Vendor Spec.",
	"Vendor Std.",
	"Push",
	"Query",
	"Query Hit",
	"Total",
}

func (t MsgType) String() string {
	if t < 0 || t >= MsgTypeCount {
		return "Invalid"
	}
	return msgTypeNames[t]
}

// DropReason classifies why a message was discarded instead of handled
// or relayed.
type DropReason int

const (
	DropBadSize DropReason = iota
	DropTooSmall
	DropTooLarge
	DropWayTooLarge
	DropUnknownType
	DropUnexpected
	DropTTL0
	DropMaxTTLExceeded
	DropPingThrottle
	DropUnusablePong
	DropHardTTLLimit
	DropMaxHopCount
	DropUnrequestedReply
	DropRouteLost
	DropNoRoute
	DropDuplicate
	DropBannedGUID
	DropShuttingDown
	DropFlowControl
	DropQueryNoNUL
	DropQueryTooShort
	DropQueryOverhead
	DropBadSHA1Query
	DropBadUTF8Query
	DropMalformedQueryHit
	DropQueryHitBadSHA1
	DropReasonCount
)

var dropReasonNames = [DropReasonCount]string{
	"Bad size",
	"Too small",
	"Too large",
	"Way too large",
	"Unknown message type",
	"Unexpected message",
	"Message sent with TTL = 0",
	"Max TTL exceeded",
	"Ping throttle",
	"Unusable Pong",
	"Hard TTL limit reached",
	"Max hop count reached",
	"Unrequested reply",
	"Route lost",
	"No route",
	"Duplicate message",
	"Message to banned GUID",
	"Node shutting down",
	"Flow control",
	"Query text had no trailing NUL",
	"Query text too short",
	"Query had unnecessary overhead",
	"Malformed SHA1 Query",
	"Malformed UTF-8 Query",
	"Malformed Query Hit",
	"Query hit had bad SHA1",
}

func (r DropReason) String() string {
	if r < 0 || r >= DropReasonCount {
		return "Invalid"
	}
	return dropReasonNames[r]
}

// GeneralKind indexes the scalar gauges of the general table.
type GeneralKind int

const (
	GeneralRoutingErrors GeneralKind = iota
	GeneralLocalSearches
	GeneralLocalHits
	GeneralCompactedQueries
	// GeneralCompactSavings is a byte total and is rendered in size units,
	// unlike every other kind.
	GeneralCompactSavings
	GeneralUTF8Queries
	GeneralSHA1Queries
	GeneralKindCount
)

var generalKindNames = [GeneralKindCount]string{
	"Routing errors",
	"Searches to local DB",
	"Hits on local DB",
	"Compacted queries",
	"Bytes saved by compacting",
	"UTF8 queries",
	"SHA1 queries",
}

func (k GeneralKind) String() string {
	if k < 0 || k >= GeneralKindCount {
		return "Invalid"
	}
	return generalKindNames[k]
}
