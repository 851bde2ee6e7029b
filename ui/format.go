package ui

import (
	"fmt"
	"strconv"

	"github.com/docker/go-units"

	"gnutop/model"
	"gnutop/util"
)

// Formatters map one counter cell to a short display string (at most
// 20 characters). A zero counter renders as the sentinel "-", padded to
// "-  " in percent mode so columns keep their width.

func (v View) zero() string {
	if v.Percent {
		return "-  "
	}
	return "-"
}

var iecSizes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// compactSize renders a byte count in human-readable IEC units with two
// decimals, e.g. "7.52 KiB".
func compactSize(n uint64) string {
	if n < 1024 {
		return strconv.FormatUint(n, 10) + " B"
	}
	return units.CustomSize("%.2f %s", float64(n), 1024, iecSizes)
}

func pct(n, total uint64) string {
	return fmt.Sprintf("%.2f%%", util.Pct(n, total))
}

// pktStat renders a packet counter cell. In percent mode the value is
// taken relative to the table's Total slot.
func (v View) pktStat(tbl *model.FlowTable, t model.MsgType) string {
	if tbl[t] == 0 {
		return v.zero()
	}
	if v.Percent {
		if tbl[model.MsgTotal] == 0 {
			return v.zero()
		}
		return pct(tbl[t], tbl[model.MsgTotal])
	}
	return strconv.FormatUint(tbl[t], 10)
}

// byteStat renders a byte counter cell. Byte counters include message
// headers; when the headers toggle is off, packets[t]*HeaderSize is
// subtracted from the cell and, in percent mode, the same correction is
// applied to the Total denominator. Underflowing cells saturate to zero
// and render as the sentinel.
func (v View) byteStat(tbl, packets *model.FlowTable, t model.MsgType) string {
	size := tbl[t]
	if size == 0 {
		return v.zero()
	}
	if !v.WithHeaders {
		size = util.SatSub(size, packets[t]*model.HeaderSize)
		if size == 0 {
			return v.zero()
		}
	}
	if v.Percent {
		total := tbl[model.MsgTotal]
		if !v.WithHeaders {
			total = util.SatSub(total, packets[model.MsgTotal]*model.HeaderSize)
		}
		if total == 0 {
			return v.zero()
		}
		return pct(size, total)
	}
	return compactSize(size)
}

// dropStat renders one drop-reason cell for the selected message type.
// The percent denominator is the total dropped packet count across all
// types, not the count for the selected type alone.
func (v View) dropStat(snap *model.Snapshot, reason model.DropReason) string {
	n := snap.DropReason[reason][v.Type]
	if n == 0 {
		if v.DropPercent {
			return "-  "
		}
		return "-"
	}
	if v.DropPercent {
		total := snap.Pkg.Dropped[model.MsgTotal]
		if total == 0 {
			return "-  "
		}
		return pct(n, total)
	}
	return strconv.FormatUint(n, 10)
}

// generalStat renders one scalar gauge. There is no percent variant;
// zero is always the bare sentinel. The compact-savings gauge is a byte
// total and renders in size units.
func generalStat(snap *model.Snapshot, kind model.GeneralKind) string {
	n := snap.General[kind]
	if n == 0 {
		return "-"
	}
	if kind == model.GeneralCompactSavings {
		return compactSize(n)
	}
	return strconv.FormatUint(n, 10)
}

// flowcStatPkg renders a packet flow-control cell. The percent
// denominator is the per-TTL (or per-hops) row's own Total slot.
func (v View) flowcStatPkg(tbl *model.FlowTable, t model.MsgType) string {
	if tbl[t] == 0 {
		return v.zero()
	}
	if v.Percent {
		if tbl[model.MsgTotal] == 0 {
			return v.zero()
		}
		return pct(tbl[t], tbl[model.MsgTotal])
	}
	return strconv.FormatUint(tbl[t], 10)
}

// flowcStatByte renders a byte flow-control cell. Flow-control byte
// counters carry no header correction.
func (v View) flowcStatByte(tbl *model.FlowTable, t model.MsgType) string {
	if tbl[t] == 0 {
		return v.zero()
	}
	if v.Percent {
		if tbl[model.MsgTotal] == 0 {
			return v.zero()
		}
		return pct(tbl[t], tbl[model.MsgTotal])
	}
	return compactSize(tbl[t])
}
