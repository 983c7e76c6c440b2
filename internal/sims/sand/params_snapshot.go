package sand

import (
	"strconv"

	"bedrock/internal/core"
)

// Parameters reports the world's current settings for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	size := w.m.Size()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", w.seed),
				stringParam("ticks", "Ticks", strconv.FormatUint(w.ticks, 10)),
			},
		},
		{
			Name: "Level",
			Params: []core.Parameter{
				stringParam("level", "Name", w.lvl.Name),
				stringParam("author", "Author", w.lvl.Author),
				intParam("chunks", "Chunks", len(w.lvl.Chunks)),
				stringParam("partition", "Partition", w.cfg.Partition.String()),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("tps", "Ticks per second", w.cfg.TPS),
				intParam("workers", "Workers", w.cfg.Workers),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tps", Label: "Ticks per second", Step: 1, Min: MinTPS, Max: MaxTPS, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Step: 1, Min: 0, Max: MaxWorkers, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a HUD-adjustable value. Unknown keys report false.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "tps":
		w.SetTPS(value)
	case "workers":
		w.cfg.Workers = min(max(value, 0), MaxWorkers)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
