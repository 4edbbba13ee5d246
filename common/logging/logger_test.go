package logging

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentFilter(t *testing.T) {
	SetupGlobalLogger("debug")

	ledgerBuf := new(bytes.Buffer)
	guardBuf := new(bytes.Buffer)

	ledgerLog := NewLoggerWithWriter("ledger", ledgerBuf)
	guardLog := NewLoggerWithWriter("guard", guardBuf)

	msgIndex := 0
	emitLogs := func() {
		ledgerBuf.Reset()
		guardBuf.Reset()
		msgIndex++
		ledgerLog.Warn().Msgf("ledger message %d", msgIndex)
		guardLog.Warn().Msgf("guard message %d", msgIndex)
	}

	ApplyComponentsFilter("-all")
	emitLogs()
	require.Equal(t, 0, ledgerBuf.Len())
	require.Equal(t, 0, guardBuf.Len())

	ApplyComponentsFilter("all:-ledger")
	emitLogs()
	require.Equal(t, 0, ledgerBuf.Len())
	require.Contains(t, guardBuf.String(), fmt.Sprintf("guard message %d", msgIndex))

	ApplyComponentsFilter("all")
	emitLogs()
	require.Contains(t, ledgerBuf.String(), fmt.Sprintf("ledger message %d", msgIndex))
	require.Contains(t, guardBuf.String(), fmt.Sprintf("guard message %d", msgIndex))
}

func TestComponentField(t *testing.T) {
	buf := new(bytes.Buffer)
	log := NewLoggerWithWriter("vault", buf)
	log.Error().Msg("boom")

	require.Contains(t, buf.String(), `"component":"vault"`)
	require.Contains(t, buf.String(), "boom")
}
