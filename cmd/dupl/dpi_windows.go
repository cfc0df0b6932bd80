package main

import (
	"github.com/kirides/duplication/win"
	"go.uber.org/zap"
)

// setDPIAware makes the calling thread PerMonitorV2 DPI aware if supported
// on the OS, so outputs are reported in physical pixels.
func setDPIAware(log *zap.Logger) {
	if win.PerMonitorAwareV2() {
		log.Debug("enabled PerMonitorAwareV2 DPI awareness")
		return
	}
	log.Debug("could not set thread DPI awareness to PerMonitorAwareV2")
}
