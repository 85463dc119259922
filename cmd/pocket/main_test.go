package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/yuhsinc/pocket-ledger/internal/common"
)

func TestSetupLoggingRejectsBadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("logging.level", "verbose")
	viper.Set("logging.format", "console")
	require.ErrorIs(t, setupLogging(), common.ErrInvalidConfig)

	viper.Set("logging.level", "info")
	viper.Set("logging.format", "xml")
	require.ErrorIs(t, setupLogging(), common.ErrInvalidConfig)
}

func TestSetupLoggingAcceptsKnownConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("logging.level", "debug")
	viper.Set("logging.format", "json")
	require.NoError(t, setupLogging())
}
