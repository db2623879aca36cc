// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package decision

// Property is an arbitrary key-value pair bound to an issued token.
// Entries returned by a deployment are merged into the properties already
// held by the decision service; on key collision the deployment's value
// wins. See handler.MergeProperties for the merge rules.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PushedAuthReqRequest is the payload for PushedAuthReq.
//
// Parameters carries the form parameters of the pushed authorization
// request in application/x-www-form-urlencoded form. ClientCertificate is
// the client's own certificate in PEM format; ClientCertificatePath is the
// rest of the chain, closest to the leaf first.
type PushedAuthReqRequest struct {
	Parameters            string   `json:"parameters"`
	ClientID              string   `json:"clientId,omitempty"`
	ClientSecret          string   `json:"clientSecret,omitempty"`
	ClientCertificate     string   `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string `json:"clientCertificatePath,omitempty"`
	DPoP                  string   `json:"dpop,omitempty"`
	HTM                   string   `json:"htm,omitempty"`
	HTU                   string   `json:"htu,omitempty"`
}

// PushedAuthReqResponse is the outcome of PushedAuthReq.
// ResponseContent, when present, is the exact body the endpoint must
// return to the client. DPoPNonce, when present, must be propagated as the
// DPoP-Nonce response header.
type PushedAuthReqResponse struct {
	Action          PushedAuthReqAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	RequestURI      string              `json:"requestUri,omitempty"`
	DPoPNonce       string              `json:"dpopNonce,omitempty"`
}

// GrantManagementOperation selects what a grant management request does.
type GrantManagementOperation string

// Grant management operations.
const (
	GrantManagementQuery  GrantManagementOperation = "QUERY"
	GrantManagementRevoke GrantManagementOperation = "REVOKE"
)

// GrantManagementRequest is the payload for GrantManagement.
type GrantManagementRequest struct {
	Operation         GrantManagementOperation `json:"gmAction"`
	GrantID           string                   `json:"grantId"`
	AccessToken       string                   `json:"accessToken"`
	ClientCertificate string                   `json:"clientCertificate,omitempty"`
	DPoP              string                   `json:"dpop,omitempty"`
	HTM               string                   `json:"htm,omitempty"`
	HTU               string                   `json:"htu,omitempty"`
}

// GrantManagementResponse is the outcome of GrantManagement.
type GrantManagementResponse struct {
	Action          GrantManagementAction `json:"action"`
	ResponseContent string                `json:"responseContent,omitempty"`
	WWWAuthenticate string                `json:"wwwAuthenticate,omitempty"`
	DPoPNonce       string                `json:"dpopNonce,omitempty"`
}

// UserInfoRequest is the payload for UserInfo.
type UserInfoRequest struct {
	Token             string `json:"token"`
	ClientCertificate string `json:"clientCertificate,omitempty"`
	DPoP              string `json:"dpop,omitempty"`
	HTM               string `json:"htm,omitempty"`
	HTU               string `json:"htu,omitempty"`
}

// UserInfoResponse is the outcome of UserInfo. When Action is
// UserInfoOK the handler collects the listed claims and follows up with
// UserInfoIssue; otherwise ResponseContent holds the error description to
// embed in the WWW-Authenticate challenge.
type UserInfoResponse struct {
	Action          UserInfoAction `json:"action"`
	ResponseContent string         `json:"responseContent,omitempty"`
	Token           string         `json:"token,omitempty"`
	Subject         string         `json:"subject,omitempty"`
	Claims          []string       `json:"claims,omitempty"`
	ClaimsLocales   []string       `json:"claimsLocales,omitempty"`
	DPoPNonce       string         `json:"dpopNonce,omitempty"`
}

// UserInfoIssueRequest is the payload for UserInfoIssue. Claims is a JSON
// object mapping claim names to values collected from the deployment.
type UserInfoIssueRequest struct {
	Token  string `json:"token"`
	Claims string `json:"claims,omitempty"`
}

// UserInfoIssueResponse is the outcome of UserInfoIssue. For the JSON and
// JWT actions ResponseContent holds the complete userinfo payload in the
// corresponding format.
type UserInfoIssueResponse struct {
	Action          UserInfoIssueAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	DPoPNonce       string              `json:"dpopNonce,omitempty"`
}

// TokenRequest is the payload for Token.
type TokenRequest struct {
	Parameters            string     `json:"parameters"`
	ClientID              string     `json:"clientId,omitempty"`
	ClientSecret          string     `json:"clientSecret,omitempty"`
	ClientCertificate     string     `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string   `json:"clientCertificatePath,omitempty"`
	DPoP                  string     `json:"dpop,omitempty"`
	HTM                   string     `json:"htm,omitempty"`
	HTU                   string     `json:"htu,omitempty"`
	Properties            []Property `json:"properties,omitempty"`
}

// TokenResponse is the outcome of Token.
//
// For TokenPassword, Username and Password carry the resource owner
// credentials to verify and Ticket identifies the request in the follow-up
// TokenIssue or TokenFail call. For the custom grant actions the whole
// response is handed to the deployment's custom grant callback.
type TokenResponse struct {
	Action          TokenAction `json:"action"`
	ResponseContent string      `json:"responseContent,omitempty"`
	Ticket          string      `json:"ticket,omitempty"`
	Username        string      `json:"username,omitempty"`
	Password        string      `json:"password,omitempty"`
	Properties      []Property  `json:"properties,omitempty"`
	GrantType       string      `json:"grantType,omitempty"`
	DPoPNonce       string      `json:"dpopNonce,omitempty"`
}

// TokenIssueRequest is the payload for TokenIssue.
type TokenIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	Properties []Property `json:"properties,omitempty"`
}

// TokenIssueResponse is the outcome of TokenIssue.
type TokenIssueResponse struct {
	Action          TokenIssueAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`
	DPoPNonce       string           `json:"dpopNonce,omitempty"`
}

// TokenFailRequest is the payload for TokenFail.
type TokenFailRequest struct {
	Ticket string          `json:"ticket"`
	Reason TokenFailReason `json:"reason"`
}

// TokenFailResponse is the outcome of TokenFail.
type TokenFailResponse struct {
	Action          TokenFailAction `json:"action"`
	ResponseContent string          `json:"responseContent,omitempty"`
}

// ClientRegistrationOperation selects what a client registration request
// does.
type ClientRegistrationOperation string

// Client registration operations.
const (
	ClientRegistrationOpRegister ClientRegistrationOperation = "REGISTER"
	ClientRegistrationOpGet      ClientRegistrationOperation = "GET"
	ClientRegistrationOpUpdate   ClientRegistrationOperation = "UPDATE"
	ClientRegistrationOpDelete   ClientRegistrationOperation = "DELETE"
)

// ClientRegistrationRequest is the payload for ClientRegistration.
// JSON is the raw client metadata document for register and update.
// Token is the registration access token for the management operations.
type ClientRegistrationRequest struct {
	Operation ClientRegistrationOperation `json:"operation"`
	JSON      string                      `json:"json,omitempty"`
	Token     string                      `json:"token,omitempty"`
	ClientID  string                      `json:"clientId,omitempty"`
}

// ClientRegistrationResponse is the outcome of ClientRegistration.
type ClientRegistrationResponse struct {
	Action          ClientRegistrationAction `json:"action"`
	ResponseContent string                   `json:"responseContent,omitempty"`
}

// CredentialOfferInfoRequest is the payload for CredentialOfferInfo.
type CredentialOfferInfoRequest struct {
	Identifier string `json:"identifier"`
}

// CredentialOfferInfoResponse is the outcome of CredentialOfferInfo.
type CredentialOfferInfoResponse struct {
	Action          CredentialOfferInfoAction `json:"action"`
	ResponseContent string                    `json:"responseContent,omitempty"`
	CredentialOffer string                    `json:"credentialOffer,omitempty"`
}
