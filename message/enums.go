package message

import (
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// Side is the FIX Side(54) enumeration.
type Side string

const (
	SideBuy  Side = constants.SideBuy
	SideSell Side = constants.SideSell
)

// ParseSide validates a wire value and returns the matching Side.
func ParseSide(v string) (Side, error) {
	switch Side(v) {
	case SideBuy, SideSell:
		return Side(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid Side %q", v)
	}
}

// OrdType is the FIX OrdType(40) enumeration.
type OrdType string

const (
	OrdTypeMarket    OrdType = constants.OrdTypeMarket
	OrdTypeLimit     OrdType = constants.OrdTypeLimit
	OrdTypeStop      OrdType = constants.OrdTypeStop
	OrdTypeStopLimit OrdType = constants.OrdTypeStopLimit
)

func ParseOrdType(v string) (OrdType, error) {
	switch OrdType(v) {
	case OrdTypeMarket, OrdTypeLimit, OrdTypeStop, OrdTypeStopLimit:
		return OrdType(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid OrdType %q", v)
	}
}

// TimeInForce is the FIX TimeInForce(59) enumeration.
type TimeInForce string

const (
	TimeInForceDay TimeInForce = constants.TimeInForceDay
	TimeInForceGTC TimeInForce = constants.TimeInForceGTC
	TimeInForceIOC TimeInForce = constants.TimeInForceIOC
	TimeInForceFOK TimeInForce = constants.TimeInForceFOK
	TimeInForceGTD TimeInForce = constants.TimeInForceGTD
)

func ParseTimeInForce(v string) (TimeInForce, error) {
	switch TimeInForce(v) {
	case TimeInForceDay, TimeInForceGTC, TimeInForceIOC, TimeInForceFOK, TimeInForceGTD:
		return TimeInForce(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid TimeInForce %q", v)
	}
}

// OrdStatus is the FIX OrdStatus(39) enumeration.
type OrdStatus string

const (
	OrdStatusNew             OrdStatus = constants.OrdStatusNew
	OrdStatusPartiallyFilled OrdStatus = constants.OrdStatusPartiallyFilled
	OrdStatusFilled          OrdStatus = constants.OrdStatusFilled
	OrdStatusCanceled        OrdStatus = constants.OrdStatusCanceled
	OrdStatusReplaced        OrdStatus = constants.OrdStatusReplaced
	OrdStatusPendingCancel   OrdStatus = constants.OrdStatusPendingCancel
	OrdStatusRejected        OrdStatus = constants.OrdStatusRejected
	OrdStatusPendingNew      OrdStatus = constants.OrdStatusPendingNew
	OrdStatusPendingReplace  OrdStatus = constants.OrdStatusPendingReplace
)

func ParseOrdStatus(v string) (OrdStatus, error) {
	switch OrdStatus(v) {
	case OrdStatusNew, OrdStatusPartiallyFilled, OrdStatusFilled, OrdStatusCanceled,
		OrdStatusReplaced, OrdStatusPendingCancel, OrdStatusRejected, OrdStatusPendingNew, OrdStatusPendingReplace:
		return OrdStatus(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid OrdStatus %q", v)
	}
}

// ExecType is the FIX ExecType(150) enumeration.
type ExecType string

const (
	ExecTypeNew           ExecType = constants.ExecTypeNew
	ExecTypePartialFill   ExecType = constants.ExecTypePartialFill
	ExecTypeFilled        ExecType = constants.ExecTypeFilled
	ExecTypeCanceled      ExecType = constants.ExecTypeCanceled
	ExecTypePendingCancel ExecType = constants.ExecTypePendingCancel
	ExecTypeRejected      ExecType = constants.ExecTypeRejected
	ExecTypePendingNew    ExecType = constants.ExecTypePendingNew
	ExecTypeExpired       ExecType = constants.ExecTypeExpired
	ExecTypeOrderStatus   ExecType = constants.ExecTypeOrderStatus
)

func ParseExecType(v string) (ExecType, error) {
	switch ExecType(v) {
	case ExecTypeNew, ExecTypePartialFill, ExecTypeFilled, ExecTypeCanceled,
		ExecTypePendingCancel, ExecTypeRejected, ExecTypePendingNew, ExecTypeExpired, ExecTypeOrderStatus:
		return ExecType(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid ExecType %q", v)
	}
}

// CxlRejResponseTo is the FIX CxlRejResponseTo(434) enumeration.
type CxlRejResponseTo string

const (
	CxlRejResponseToCancel  CxlRejResponseTo = constants.CxlRejResponseToCancel
	CxlRejResponseToReplace CxlRejResponseTo = constants.CxlRejResponseToReplace
)

func ParseCxlRejResponseTo(v string) (CxlRejResponseTo, error) {
	switch CxlRejResponseTo(v) {
	case CxlRejResponseToCancel, CxlRejResponseToReplace:
		return CxlRejResponseTo(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid CxlRejResponseTo %q", v)
	}
}

// MDEntryType is the FIX MDEntryType(269) enumeration.
type MDEntryType string

const (
	MDEntryTypeBid             MDEntryType = constants.MDEntryTypeBid
	MDEntryTypeOffer           MDEntryType = constants.MDEntryTypeOffer
	MDEntryTypeTrade           MDEntryType = constants.MDEntryTypeTrade
	MDEntryTypeIndexValue      MDEntryType = constants.MDEntryTypeIndexValue
	MDEntryTypeSettlementPrice MDEntryType = constants.MDEntryTypeSettlementPrice
)

func ParseMDEntryType(v string) (MDEntryType, error) {
	switch MDEntryType(v) {
	case MDEntryTypeBid, MDEntryTypeOffer, MDEntryTypeTrade, MDEntryTypeIndexValue, MDEntryTypeSettlementPrice:
		return MDEntryType(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid MDEntryType %q", v)
	}
}

// MDUpdateAction is the FIX MDUpdateAction(279) enumeration.
type MDUpdateAction string

const (
	MDUpdateActionNew    MDUpdateAction = constants.MDUpdateActionNew
	MDUpdateActionChange MDUpdateAction = constants.MDUpdateActionChange
	MDUpdateActionDelete MDUpdateAction = constants.MDUpdateActionDelete
)

func ParseMDUpdateAction(v string) (MDUpdateAction, error) {
	switch MDUpdateAction(v) {
	case MDUpdateActionNew, MDUpdateActionChange, MDUpdateActionDelete:
		return MDUpdateAction(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid MDUpdateAction %q", v)
	}
}

// SubscriptionRequestType is the FIX SubscriptionRequestType(263) enumeration.
type SubscriptionRequestType string

const (
	SubscriptionTypeSnapshot            SubscriptionRequestType = constants.SubscriptionTypeSnapshot
	SubscriptionTypeSnapshotPlusUpdates SubscriptionRequestType = constants.SubscriptionTypeSnapshotPlusUpdates
	SubscriptionTypeUnsubscribe         SubscriptionRequestType = constants.SubscriptionTypeUnsubscribe
)

func ParseSubscriptionRequestType(v string) (SubscriptionRequestType, error) {
	switch SubscriptionRequestType(v) {
	case SubscriptionTypeSnapshot, SubscriptionTypeSnapshotPlusUpdates, SubscriptionTypeUnsubscribe:
		return SubscriptionRequestType(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid SubscriptionRequestType %q", v)
	}
}

// SessionRejectReason is the FIX SessionRejectReason(373) enumeration.
// This is a superset of the eleven reasons early FIX 4.4 texts list,
// including the Deribit gateway's use of 99 for "Other".
type SessionRejectReason string

const (
	SessionRejectReasonInvalidTagNumber        SessionRejectReason = constants.SessionRejectReasonInvalidTagNumber
	SessionRejectReasonRequiredTagMissing      SessionRejectReason = constants.SessionRejectReasonRequiredTagMissing
	SessionRejectReasonTagNotDefinedForMsgType SessionRejectReason = constants.SessionRejectReasonTagNotDefinedForMsgType
	SessionRejectReasonUndefinedTag            SessionRejectReason = constants.SessionRejectReasonUndefinedTag
	SessionRejectReasonTagSpecifiedWithoutValue SessionRejectReason = constants.SessionRejectReasonTagSpecifiedWithoutValue
	SessionRejectReasonValueIncorrectForTag    SessionRejectReason = constants.SessionRejectReasonValueIncorrectForTag
	SessionRejectReasonIncorrectDataFormat     SessionRejectReason = constants.SessionRejectReasonIncorrectDataFormat
	SessionRejectReasonDecryptionProblem       SessionRejectReason = constants.SessionRejectReasonDecryptionProblem
	SessionRejectReasonSignatureProblem        SessionRejectReason = constants.SessionRejectReasonSignatureProblem
	SessionRejectReasonCompIDProblem           SessionRejectReason = constants.SessionRejectReasonCompIDProblem
	SessionRejectReasonSendingTimeAccuracy     SessionRejectReason = constants.SessionRejectReasonSendingTimeAccuracy
	SessionRejectReasonInvalidMsgType          SessionRejectReason = constants.SessionRejectReasonInvalidMsgType
	SessionRejectReasonOther                  SessionRejectReason = constants.SessionRejectReasonOther
)

// BusinessRejectReason is the FIX BusinessRejectReason(380) enumeration.
type BusinessRejectReason string

const (
	BusinessRejectReasonOther                    BusinessRejectReason = constants.BusinessRejectReasonOther
	BusinessRejectReasonUnknownID                BusinessRejectReason = constants.BusinessRejectReasonUnknownID
	BusinessRejectReasonUnknownSecurity          BusinessRejectReason = constants.BusinessRejectReasonUnknownSecurity
	BusinessRejectReasonUnsupportedMessageType   BusinessRejectReason = constants.BusinessRejectReasonUnsupportedMessageType
	BusinessRejectReasonApplicationNotAvailable  BusinessRejectReason = constants.BusinessRejectReasonApplicationNotAvailable
	BusinessRejectReasonCondRequiredFieldMissing BusinessRejectReason = constants.BusinessRejectReasonCondRequiredFieldMissing
	BusinessRejectReasonNotAuthorized            BusinessRejectReason = constants.BusinessRejectReasonNotAuthorized
)

// OrdRejReason is the FIX OrdRejReason(103) enumeration.
type OrdRejReason string

const (
	OrdRejReasonBrokerOption   OrdRejReason = constants.OrdRejReasonBrokerOption
	OrdRejReasonUnknownSymbol  OrdRejReason = constants.OrdRejReasonUnknownSymbol
	OrdRejReasonExchangeClosed OrdRejReason = constants.OrdRejReasonExchangeClosed
	OrdRejReasonExceedsLimit   OrdRejReason = constants.OrdRejReasonExceedsLimit
	OrdRejReasonTooLate        OrdRejReason = constants.OrdRejReasonTooLate
	OrdRejReasonUnknownOrder   OrdRejReason = constants.OrdRejReasonUnknownOrder
	OrdRejReasonDuplicateOrder OrdRejReason = constants.OrdRejReasonDuplicateOrder
	OrdRejReasonOther          OrdRejReason = constants.OrdRejReasonOther
)

// MassCancelRequestType is the FIX MassCancelRequestType(530) enumeration.
type MassCancelRequestType string

const (
	MassCancelBySymbol       MassCancelRequestType = constants.MassCancelBySymbol
	MassCancelBySecurityType MassCancelRequestType = constants.MassCancelBySecurityType
	MassCancelByDeribitLabel MassCancelRequestType = constants.MassCancelByDeribitLabel
	MassCancelAllOrders      MassCancelRequestType = constants.MassCancelAllOrders
)

func ParseMassCancelRequestType(v string) (MassCancelRequestType, error) {
	switch MassCancelRequestType(v) {
	case MassCancelBySymbol, MassCancelBySecurityType, MassCancelByDeribitLabel, MassCancelAllOrders:
		return MassCancelRequestType(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid MassCancelRequestType %q", v)
	}
}

// MassCancelResponse is the FIX MassCancelResponse(531) enumeration.
type MassCancelResponse string

const (
	MassCancelResponseCancelRequestRejected   MassCancelResponse = constants.MassCancelResponseCancelRequestRejected
	MassCancelResponseCancelledBySymbol       MassCancelResponse = constants.MassCancelResponseCancelledBySymbol
	MassCancelResponseCancelledBySecurityType MassCancelResponse = constants.MassCancelResponseCancelledBySecurityType
	MassCancelResponseCancelledByDeribitLabel MassCancelResponse = constants.MassCancelResponseCancelledByDeribitLabel
	MassCancelResponseCancelledAllOrders      MassCancelResponse = constants.MassCancelResponseCancelledAllOrders
)

// QuoteRejectReason is the FIX QuoteRejectReason(300) enumeration.
type QuoteRejectReason string

const (
	QuoteRejectReasonUnknownSymbol  QuoteRejectReason = constants.QuoteRejectReasonUnknownSymbol
	QuoteRejectReasonExchangeClosed QuoteRejectReason = constants.QuoteRejectReasonExchangeClosed
	QuoteRejectReasonExceedsLimit   QuoteRejectReason = constants.QuoteRejectReasonExceedsLimit
	QuoteRejectReasonDuplicate      QuoteRejectReason = constants.QuoteRejectReasonDuplicate
	QuoteRejectReasonInvalidPrice   QuoteRejectReason = constants.QuoteRejectReasonInvalidPrice
	QuoteRejectReasonOther          QuoteRejectReason = constants.QuoteRejectReasonOther
)

// QuoteStatus is the FIX QuoteStatus(297) enumeration.
type QuoteStatus string

const (
	QuoteStatusAccepted QuoteStatus = constants.QuoteStatusAccepted
	QuoteStatusCanceled QuoteStatus = constants.QuoteStatusCanceled
	QuoteStatusRejected QuoteStatus = constants.QuoteStatusRejected
	QuoteStatusExpired  QuoteStatus = constants.QuoteStatusExpired
	QuoteStatusQuery    QuoteStatus = constants.QuoteStatusQuery
	QuoteStatusActive   QuoteStatus = constants.QuoteStatusActive
)

// UserRequestType is the FIX UserRequestType(924) enumeration.
type UserRequestType string

const (
	UserRequestTypeLogOnUser      UserRequestType = constants.UserRequestTypeLogOnUser
	UserRequestTypeLogOffUser     UserRequestType = constants.UserRequestTypeLogOffUser
	UserRequestTypeChangePassword UserRequestType = constants.UserRequestTypeChangePassword
	UserRequestTypeRequestStatus  UserRequestType = constants.UserRequestTypeRequestStatus
)

// UserStatus is the FIX UserStatus(926) enumeration.
type UserStatus string

const (
	UserStatusLoggedIn          UserStatus = constants.UserStatusLoggedIn
	UserStatusNotLoggedIn       UserStatus = constants.UserStatusNotLoggedIn
	UserStatusUserNotRecognised UserStatus = constants.UserStatusUserNotRecognised
	UserStatusPasswordIncorrect UserStatus = constants.UserStatusPasswordIncorrect
	UserStatusPasswordChanged   UserStatus = constants.UserStatusPasswordChanged
	UserStatusOther             UserStatus = constants.UserStatusOther
)

// MassStatusReqIDType identifies what MassStatusReqID holds when an
// OrderMassStatusRequest is narrowed to a single order.
type MassStatusReqIDType string

const (
	MassStatusReqIDTypeOrigClOrdID  MassStatusReqIDType = constants.MassStatusReqIDTypeOrigClOrdID
	MassStatusReqIDTypeClOrdID      MassStatusReqIDType = constants.MassStatusReqIDTypeClOrdID
	MassStatusReqIDTypeDeribitLabel MassStatusReqIDType = constants.MassStatusReqIDTypeDeribitLabel
)

// MMProtectionResetType is the Deribit MM-protection reset-type enumeration.
type MMProtectionResetType string

const (
	MMProtResetCounters MMProtectionResetType = constants.MMProtResetCounters
	MMProtResetLimits   MMProtectionResetType = constants.MMProtResetLimits
)
