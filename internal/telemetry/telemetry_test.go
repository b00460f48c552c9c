package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitOtel_NoExporters(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), Options{ServiceName: "cat-match"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
