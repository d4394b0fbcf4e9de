package chart

import (
	"github.com/google/uuid"

	"chartd/internal/render"
)

// Member is anything that can join a sync group. *Chart is a Member; wrap a
// bare handle with Raw.
type Member interface {
	Chart() render.Handle
}

type rawMember struct{ h render.Handle }

func (m rawMember) Chart() render.Handle { return m.h }

// Raw adapts a rendering-library handle into a Member.
func Raw(h render.Handle) Member { return rawMember{h: h} }

// NewGroupID returns a fresh opaque group token.
func NewGroupID() render.GroupID {
	return render.GroupID("chartSync-" + uuid.NewString())
}

// Connect assigns group to every member's handle and asks the renderer to
// mirror interaction events across the group. An empty group gets a
// generated token. Members without a live handle are skipped; a call with no
// usable member is rejected.
func Connect(r render.Renderer, group render.GroupID, members ...Member) (render.GroupID, error) {
	handles := make([]render.Handle, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		h := m.Chart()
		if h == nil || h.IsDisposed() {
			logger.Warn().Msg("skipping chart without a live handle in sync connect")
			continue
		}
		handles = append(handles, h)
	}
	if len(handles) == 0 {
		err := noMembersError{}
		logger.Error().Err(err).Msg("sync connect rejected")
		return "", err
	}
	if group == "" {
		group = NewGroupID()
	}
	for _, h := range handles {
		h.SetGroup(group)
	}
	r.Connect(group)
	logger.Debug().Str("group", string(group)).Int("charts", len(handles)).Msg("sync group connected")
	return group, nil
}

// Disconnect stops event mirroring for each target. A target may be a
// GroupID, a group name string, a Member (its current group is used), or a
// slice of any of these nested to any depth. Unknown values are ignored.
func Disconnect(r render.Renderer, targets ...any) error {
	if len(targets) == 0 {
		err := noGroupsError{}
		logger.Error().Err(err).Msg("sync disconnect rejected")
		return err
	}
	for _, g := range groupsOf(nil, targets) {
		r.Disconnect(g)
		logger.Debug().Str("group", string(g)).Msg("sync group disconnected")
	}
	return nil
}

func groupsOf(out []render.GroupID, targets []any) []render.GroupID {
	for _, t := range targets {
		switch v := t.(type) {
		case render.GroupID:
			if v != "" {
				out = append(out, v)
			}
		case string:
			if v != "" {
				out = append(out, render.GroupID(v))
			}
		case Member:
			if h := v.Chart(); h != nil && h.Group() != "" {
				out = append(out, h.Group())
			}
		case []any:
			out = groupsOf(out, v)
		case []render.GroupID:
			for _, g := range v {
				out = groupsOf(out, []any{g})
			}
		case []string:
			for _, g := range v {
				out = groupsOf(out, []any{g})
			}
		case []*Chart:
			for _, c := range v {
				out = groupsOf(out, []any{c})
			}
		case []Member:
			for _, m := range v {
				out = groupsOf(out, []any{m})
			}
		default:
			logger.Warn().Interface("target", t).Msg("ignoring unknown sync disconnect target")
		}
	}
	return out
}

// GroupName returns the group currently assigned to the chart's handle.
func (c *Chart) GroupName() render.GroupID {
	if c == nil || c.handle == nil {
		return ""
	}
	return c.handle.Group()
}

// Connect places c and peers into one sync group. At least one peer is
// required.
func (c *Chart) Connect(group render.GroupID, peers ...Member) (render.GroupID, error) {
	if err := c.live("sync_connect"); err != nil {
		return "", err
	}
	if len(peers) == 0 {
		err := noMembersError{}
		logger.Error().Str("element", c.elementID).Err(err).Msg("sync connect rejected")
		return "", err
	}
	return Connect(c.renderer, group, append(append([]Member(nil), peers...), c)...)
}

// Disconnect disconnects the given targets, or c's own group when none are
// given.
func (c *Chart) Disconnect(targets ...any) error {
	if err := c.live("sync_disconnect"); err != nil {
		return err
	}
	if len(targets) == 0 {
		g := c.GroupName()
		if g == "" {
			return nil
		}
		return Disconnect(c.renderer, g)
	}
	return Disconnect(c.renderer, targets...)
}
