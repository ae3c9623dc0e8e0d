package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime-toggleable switches.
type SettingsData struct {
	Debug bool // draw collision outlines and the state readout
}

var Settings = donburi.NewComponentType[SettingsData]()
