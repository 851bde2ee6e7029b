package ui

import (
	"gnutop/gnet"
	"gnutop/model"
	"gnutop/props"
)

// View is the user-selected slice of the counter cube plus the display
// toggles. The toggles are re-read from the property store on every
// render; only the selected message type lives in driver state.
type View struct {
	Type        model.MsgType
	Percent     bool
	Bytes       bool
	WithHeaders bool
	DropPercent bool
	Source      gnet.Source
}

// viewFromProps assembles a View from the property store and the
// currently selected type.
func viewFromProps(st *props.Store, selected model.MsgType) View {
	return View{
		Type:        selected,
		Percent:     st.GetBool(props.StatsPerc),
		Bytes:       st.GetBool(props.StatsBytes),
		WithHeaders: st.GetBool(props.StatsWithHeaders),
		DropPercent: st.GetBool(props.StatsDropPerc),
		Source:      gnet.Source(st.GetUint32(props.StatsSource)),
	}
}
