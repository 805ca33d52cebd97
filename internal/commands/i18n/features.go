package i18ncmd

// FeatureGates exposes runtime feature toggles required by i18n command
// handlers. Callers should supply closures that read from the runtime
// configuration so handlers stay decoupled from it.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return true
	}
	return g.GeneratorEnabled()
}
