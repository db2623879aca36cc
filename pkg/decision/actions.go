// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package decision

// Each decision API reports its outcome as a discrete action drawn from a
// closed, endpoint-specific set. A value outside the set is a contract
// violation; handlers must treat it as fatal, never ignore it.

// PushedAuthReqAction is the outcome of a PushedAuthReq call.
type PushedAuthReqAction string

// Actions returned from PushedAuthReq.
const (
	PushedAuthReqCreated             PushedAuthReqAction = "CREATED"
	PushedAuthReqBadRequest          PushedAuthReqAction = "BAD_REQUEST"
	PushedAuthReqUnauthorized        PushedAuthReqAction = "UNAUTHORIZED"
	PushedAuthReqForbidden           PushedAuthReqAction = "FORBIDDEN"
	PushedAuthReqPayloadTooLarge     PushedAuthReqAction = "PAYLOAD_TOO_LARGE"
	PushedAuthReqInternalServerError PushedAuthReqAction = "INTERNAL_SERVER_ERROR"
)

// GrantManagementAction is the outcome of a GrantManagement call.
type GrantManagementAction string

// Actions returned from GrantManagement.
const (
	GrantManagementOK           GrantManagementAction = "OK"
	GrantManagementNoContent    GrantManagementAction = "NO_CONTENT"
	GrantManagementUnauthorized GrantManagementAction = "UNAUTHORIZED"
	GrantManagementForbidden    GrantManagementAction = "FORBIDDEN"
	GrantManagementNotFound     GrantManagementAction = "NOT_FOUND"
	GrantManagementCallerError  GrantManagementAction = "CALLER_ERROR"
	GrantManagementServerError  GrantManagementAction = "SERVER_ERROR"
)

// UserInfoAction is the outcome of a UserInfo call.
type UserInfoAction string

// Actions returned from UserInfo.
const (
	UserInfoOK                  UserInfoAction = "OK"
	UserInfoBadRequest          UserInfoAction = "BAD_REQUEST"
	UserInfoUnauthorized        UserInfoAction = "UNAUTHORIZED"
	UserInfoForbidden           UserInfoAction = "FORBIDDEN"
	UserInfoInternalServerError UserInfoAction = "INTERNAL_SERVER_ERROR"
)

// UserInfoIssueAction is the outcome of a UserInfoIssue call.
type UserInfoIssueAction string

// Actions returned from UserInfoIssue.
const (
	UserInfoIssueJSON                UserInfoIssueAction = "JSON"
	UserInfoIssueJWT                 UserInfoIssueAction = "JWT"
	UserInfoIssueBadRequest          UserInfoIssueAction = "BAD_REQUEST"
	UserInfoIssueUnauthorized        UserInfoIssueAction = "UNAUTHORIZED"
	UserInfoIssueForbidden           UserInfoIssueAction = "FORBIDDEN"
	UserInfoIssueInternalServerError UserInfoIssueAction = "INTERNAL_SERVER_ERROR"
)

// TokenAction is the outcome of a Token call.
type TokenAction string

// Actions returned from Token. Password selects the resource owner
// password credentials flow; TokenExchange and JWTBearer flag grant types
// whose handling is delegated to the deployment.
const (
	TokenOK                  TokenAction = "OK"
	TokenBadRequest          TokenAction = "BAD_REQUEST"
	TokenInvalidClient       TokenAction = "INVALID_CLIENT"
	TokenInternalServerError TokenAction = "INTERNAL_SERVER_ERROR"
	TokenPassword            TokenAction = "PASSWORD"
	TokenTokenExchange       TokenAction = "TOKEN_EXCHANGE"
	TokenJWTBearer           TokenAction = "JWT_BEARER"
)

// TokenIssueAction is the outcome of a TokenIssue call.
type TokenIssueAction string

// Actions returned from TokenIssue.
const (
	TokenIssueOK                  TokenIssueAction = "OK"
	TokenIssueInternalServerError TokenIssueAction = "INTERNAL_SERVER_ERROR"
)

// TokenFailAction is the outcome of a TokenFail call.
type TokenFailAction string

// Actions returned from TokenFail.
const (
	TokenFailBadRequest          TokenFailAction = "BAD_REQUEST"
	TokenFailInternalServerError TokenFailAction = "INTERNAL_SERVER_ERROR"
)

// TokenFailReason tells the decision service why token issuance was
// refused locally.
type TokenFailReason string

// Reasons passed to TokenFail.
const (
	TokenFailReasonUnknown                         TokenFailReason = "UNKNOWN"
	TokenFailReasonInvalidResourceOwnerCredentials TokenFailReason = "INVALID_RESOURCE_OWNER_CREDENTIALS"
)

// ClientRegistrationAction is the outcome of a ClientRegistration call.
type ClientRegistrationAction string

// Actions returned from ClientRegistration.
const (
	ClientRegistrationCreated             ClientRegistrationAction = "CREATED"
	ClientRegistrationOK                  ClientRegistrationAction = "OK"
	ClientRegistrationUpdated             ClientRegistrationAction = "UPDATED"
	ClientRegistrationDeleted             ClientRegistrationAction = "DELETED"
	ClientRegistrationBadRequest          ClientRegistrationAction = "BAD_REQUEST"
	ClientRegistrationUnauthorized        ClientRegistrationAction = "UNAUTHORIZED"
	ClientRegistrationInternalServerError ClientRegistrationAction = "INTERNAL_SERVER_ERROR"
)

// CredentialOfferInfoAction is the outcome of a CredentialOfferInfo call.
type CredentialOfferInfoAction string

// Actions returned from CredentialOfferInfo.
const (
	CredentialOfferInfoOK          CredentialOfferInfoAction = "OK"
	CredentialOfferInfoForbidden   CredentialOfferInfoAction = "FORBIDDEN"
	CredentialOfferInfoNotFound    CredentialOfferInfoAction = "NOT_FOUND"
	CredentialOfferInfoCallerError CredentialOfferInfoAction = "CALLER_ERROR"
	CredentialOfferInfoServerError CredentialOfferInfoAction = "SERVER_ERROR"
)
