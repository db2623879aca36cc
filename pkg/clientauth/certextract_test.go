// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package clientauth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfSignedCert generates a throwaway certificate and returns it parsed
// plus PEM-encoded.
func selfSignedCert(t *testing.T, commonName string) (*x509.Certificate, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	return cert, string(pemBytes)
}

func TestExtractChainFromConnectionState(t *testing.T) {
	t.Parallel()

	leaf, leafPEM := selfSignedCert(t, "client")
	intermediate, intermediatePEM := selfSignedCert(t, "intermediate")

	req := httptest.NewRequest("POST", "https://as.example.com/token", nil)
	req.TLS = &tls.ConnectionState{
		PeerCertificates: []*x509.Certificate{leaf, intermediate},
	}

	chain := ExtractChain(req)
	require.Len(t, chain, 2)
	assert.Equal(t, leafPEM, chain[0])
	assert.Equal(t, intermediatePEM, chain[1])
	assert.Equal(t, leafPEM, ExtractCertificate(req))
}

func TestExtractChainFromHeaders(t *testing.T) {
	t.Parallel()

	_, leafPEM := selfSignedCert(t, "client")
	_, intermediatePEM := selfSignedCert(t, "intermediate")

	req := httptest.NewRequest("POST", "http://as.internal/token", nil)
	req.Header.Set("X-Ssl-Cert", leafPEM)
	req.Header.Set("X-Ssl-Cert-Chain-1", intermediatePEM)

	chain := ExtractChain(req)
	require.Len(t, chain, 2)
	assert.Equal(t, strings.TrimSpace(leafPEM), strings.TrimSpace(chain[0]))
	assert.Equal(t, strings.TrimSpace(intermediatePEM), strings.TrimSpace(chain[1]))
}

func TestExtractChainPrecedence(t *testing.T) {
	t.Parallel()

	connCert, connPEM := selfSignedCert(t, "direct")
	_, headerPEM := selfSignedCert(t, "forwarded")

	req := httptest.NewRequest("POST", "https://as.example.com/token", nil)
	req.TLS = &tls.ConnectionState{PeerCertificates: []*x509.Certificate{connCert}}
	req.Header.Set("X-Ssl-Cert", headerPEM)

	// Both strategies yield a chain; the connection state must win.
	chain := ExtractChain(req)
	require.Len(t, chain, 1)
	assert.Equal(t, connPEM, chain[0])
}

func TestExtractChainAbsent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://as.internal/userinfo", nil)

	assert.Nil(t, ExtractChain(req))
	assert.Empty(t, ExtractCertificate(req))
}

func TestHeaderExtractorNormalization(t *testing.T) {
	t.Parallel()

	_, leafPEM := selfSignedCert(t, "client")
	extractor := NewHeaderExtractor()

	t.Run("url encoded", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "http://as.internal/token", nil)
		req.Header.Set("X-Ssl-Cert", url.QueryEscape(leafPEM))

		chain := extractor.ExtractChain(req)
		require.Len(t, chain, 1)
		assert.Equal(t, strings.TrimSpace(leafPEM), strings.TrimSpace(chain[0]))
	})

	t.Run("bare base64 gets armor", func(t *testing.T) {
		t.Parallel()
		bare := strings.TrimSpace(leafPEM)
		bare = strings.TrimPrefix(bare, "-----BEGIN CERTIFICATE-----")
		bare = strings.TrimSuffix(bare, "-----END CERTIFICATE-----")
		bare = strings.TrimSpace(bare)

		req := httptest.NewRequest("POST", "http://as.internal/token", nil)
		req.Header.Set("X-Ssl-Cert", bare)

		chain := extractor.ExtractChain(req)
		require.Len(t, chain, 1)
		assert.True(t, strings.HasPrefix(chain[0], "-----BEGIN CERTIFICATE-----"))
		assert.True(t, strings.HasSuffix(chain[0], "-----END CERTIFICATE-----"))
	})

	t.Run("null marker means absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "http://as.internal/token", nil)
		req.Header.Set("X-Ssl-Cert", "(null)")

		assert.Nil(t, extractor.ExtractChain(req))
	})

	t.Run("chain stops at first gap", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "http://as.internal/token", nil)
		req.Header.Set("X-Ssl-Cert", leafPEM)
		req.Header.Set("X-Ssl-Cert-Chain-2", leafPEM) // no -1 header

		chain := extractor.ExtractChain(req)
		assert.Len(t, chain, 1)
	})
}
