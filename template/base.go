package template

import (
	"errors"

	"github.com/flosch/pongo2/v6"

	"github.com/xcp/xcpdex.com/util"
)

// formatTime filter
var _ = func() interface{} {
	pongo2.RegisterFilter("formatTime", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatTime(in.String())), nil
	})
	return nil
}()

// timeAgo filter
var _ = func() interface{} {
	pongo2.RegisterFilter("timeAgo", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.TimeAgo(int64(in.Integer()))), nil
	})
	return nil
}()

// shortAddress filter
var _ = func() interface{} {
	pongo2.RegisterFilter("shortAddress", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.ShortAddress(in.String())), nil
	})
	return nil
}()

// statusBadge filter
var _ = func() interface{} {
	pongo2.RegisterFilter("statusBadge", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.StatusBadge(in.String())), nil
	})
	return nil
}()

// statusLabel filter
var _ = func() interface{} {
	pongo2.RegisterFilter("statusLabel", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.StatusCategory(in.String())), nil
	})
	return nil
}()

var ErrRender = errors.New("failed to render message, try again later")
