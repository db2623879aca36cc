// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package clientauth

import (
	"encoding/pem"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// ChainExtractor pulls a client certificate chain out of an incoming
// request. Implementations return the chain as PEM strings with the
// client's own certificate first, or nil when the request carries none.
// Extraction is deterministic and side-effect free.
type ChainExtractor interface {
	ExtractChain(r *http.Request) []string
}

// connectionStateExtractor reads the peer certificates negotiated on a
// mutually-authenticated TLS connection.
type connectionStateExtractor struct{}

// ExtractChain implements ChainExtractor.
func (connectionStateExtractor) ExtractChain(r *http.Request) []string {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return nil
	}

	chain := make([]string, 0, len(r.TLS.PeerCertificates))
	for _, cert := range r.TLS.PeerCertificates {
		block := &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}
		chain = append(chain, string(pem.EncodeToMemory(block)))
	}
	return chain
}

// Default header names used by TLS-terminating proxies to forward the
// client certificate. The leaf goes in CertHeader; the rest of the chain
// in ChainHeaderPrefix-1, ChainHeaderPrefix-2, and so on.
const (
	DefaultCertHeader        = "X-Ssl-Cert"
	DefaultChainHeaderPrefix = "X-Ssl-Cert-Chain"
	defaultMaxChainLength    = 4
)

// ConnectionStateExtractor returns the extractor that reads the peer
// certificates negotiated on the request's own TLS connection. Place it
// first when composing a custom extractor chain.
func ConnectionStateExtractor() ChainExtractor {
	return connectionStateExtractor{}
}

// HeaderExtractor reads certificates forwarded by a TLS-terminating
// reverse proxy in request headers. Values may be plain PEM, URL-encoded
// PEM (nginx's $ssl_client_escaped_cert), or bare base64 DER; all three
// are normalized to PEM.
type HeaderExtractor struct {
	// CertHeader is the header carrying the client's own certificate.
	CertHeader string

	// ChainHeaderPrefix is the prefix of the numbered headers carrying the
	// intermediate certificates.
	ChainHeaderPrefix string

	// MaxChainLength caps how many numbered chain headers are read.
	MaxChainLength int
}

// NewHeaderExtractor returns a HeaderExtractor with the default header
// names.
func NewHeaderExtractor() *HeaderExtractor {
	return &HeaderExtractor{
		CertHeader:        DefaultCertHeader,
		ChainHeaderPrefix: DefaultChainHeaderPrefix,
		MaxChainLength:    defaultMaxChainLength,
	}
}

// ExtractChain implements ChainExtractor.
func (e *HeaderExtractor) ExtractChain(r *http.Request) []string {
	var chain []string

	leaf := normalizeCert(r.Header.Get(e.CertHeader))
	if leaf == "" {
		return nil
	}
	chain = append(chain, leaf)

	for i := 1; i <= e.MaxChainLength; i++ {
		cert := normalizeCert(r.Header.Get(fmt.Sprintf("%s-%d", e.ChainHeaderPrefix, i)))
		if cert == "" {
			break
		}
		chain = append(chain, cert)
	}
	return chain
}

const pemHeader = "-----BEGIN CERTIFICATE-----"

// normalizeCert turns a forwarded header value into a PEM certificate.
// Some proxies send the literal string "(null)" when no certificate was
// presented; that counts as absent.
func normalizeCert(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "(null)" {
		return ""
	}

	// nginx forwards the certificate URL-encoded.
	if strings.Contains(value, "%") {
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = strings.TrimSpace(decoded)
		}
	}

	if strings.HasPrefix(value, pemHeader) {
		return value
	}

	// Bare base64 DER without armor: wrap it.
	return pemHeader + "\n" + value + "\n-----END CERTIFICATE-----"
}

// The two strategies hold no per-request state, so one instance of each
// serves the whole process.
var defaultExtractors = sync.OnceValue(func() []ChainExtractor {
	return []ChainExtractor{
		connectionStateExtractor{},
		NewHeaderExtractor(),
	}
})

// ExtractChain extracts a client certificate chain from the request. The
// TLS connection state is consulted first; forwarding headers are read
// only when the connection itself yields nothing.
func ExtractChain(r *http.Request) []string {
	for _, extractor := range defaultExtractors() {
		if chain := extractor.ExtractChain(r); len(chain) > 0 {
			return chain
		}
	}
	return nil
}

// ExtractCertificate returns the client's own certificate, the first
// entry of the extracted chain, or the empty string when the request
// carries none.
func ExtractCertificate(r *http.Request) string {
	chain := ExtractChain(r)
	if len(chain) == 0 {
		return ""
	}
	return chain[0]
}
