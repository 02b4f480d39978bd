package paymentfx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCredentialRepo struct {
	endpoints map[string]string
}

func (s *stubCredentialRepo) ActiveKey(ctx context.Context, service string) (string, error) {
	return "", nil
}

func (s *stubCredentialRepo) ActiveEndpoint(ctx context.Context, service string) (string, error) {
	return s.endpoints[service], nil
}

func TestGatewayBaseURLPrefersRegistryRow(t *testing.T) {
	t.Setenv("MOYASAR_BASE_URL", "https://env.moyasar.test/v1")

	credentials := &stubCredentialRepo{
		endpoints: map[string]string{"moyasar": "https://sandbox.moyasar.test/v1"},
	}

	assert.Equal(t, "https://sandbox.moyasar.test/v1", gatewayBaseURL(credentials))
}

func TestGatewayBaseURLFallsBackToEnv(t *testing.T) {
	t.Setenv("MOYASAR_BASE_URL", "https://env.moyasar.test/v1")

	credentials := &stubCredentialRepo{endpoints: map[string]string{}}

	assert.Equal(t, "https://env.moyasar.test/v1", gatewayBaseURL(credentials))
}
