// Package constants holds the FIX 4.4 tag numbers, message type codes,
// and enumeration wire values used across the codec, session, and
// message catalog — standard FIX plus the Deribit custom tag ranges
// (9001-9044, 100010, 2000/3000/4000 repeating-group dialect).
package constants

// --- Protocol framing ---
const (
	SOH           byte = 0x01
	BeginString        = "FIX.4.4"
	FixTimeLayout      = "20060102-15:04:05.000"
	DefaultTarget      = "DERIBITSERVER"
)

// MsgSeqNumInit is the first outgoing/incoming sequence number of a
// fresh session.
const MsgSeqNumInit uint32 = 1

// --- Message Types (tag 35) ---
const (
	MsgTypeHeartbeat                 = "0"
	MsgTypeTestRequest               = "1"
	MsgTypeResendRequest             = "2"
	MsgTypeReject                    = "3"
	MsgTypeSequenceReset             = "4"
	MsgTypeLogout                    = "5"
	MsgTypeExecutionReport           = "8"
	MsgTypeOrderCancelReject         = "9"
	MsgTypeLogon                     = "A"
	MsgTypeNewOrderSingle            = "D"
	MsgTypeOrderCancelRequest        = "F"
	MsgTypeOrderCancelReplaceRequest = "G"
	MsgTypeQuoteRequest              = "R"
	MsgTypeMarketDataRequest         = "V"
	MsgTypeMarketDataSnapshotFull    = "W"
	MsgTypeMarketDataIncremental     = "X"
	MsgTypeMarketDataRequestReject   = "Y"
	MsgTypeQuoteCancel               = "Z"
	MsgTypeQuoteStatusRequest        = "a"
	MsgTypeMassQuoteAcknowledgement  = "b"
	MsgTypeSecurityDefinitionRequest = "c"
	MsgTypeSecurityDefinition        = "d"
	MsgTypeSecurityStatusRequest     = "e"
	MsgTypeSecurityStatus            = "f"
	MsgTypeMassQuote                 = "i"
	MsgTypeBusinessMessageReject     = "j"
	MsgTypeOrderMassCancelRequest    = "q"
	MsgTypeOrderMassCancelReport     = "r"
	MsgTypeSecurityListRequest       = "x"
	MsgTypeSecurityList              = "y"
	MsgTypeQuoteStatusReport         = "AI"
	MsgTypeRfqRequest                = "AH"
	MsgTypeQuoteRequestReject        = "AG"
	MsgTypeTradeCaptureReportRequest = "AD"
	MsgTypeTradeCaptureReport        = "AE"
	MsgTypeTradeCaptureReportReqAck  = "AQ"
	MsgTypeOrderMassStatusRequest    = "AF"
	MsgTypeRequestForPositions       = "AN"
	MsgTypePositionReport            = "AP"
	MsgTypeUserRequest               = "BE"
	MsgTypeUserResponse              = "BF"
	MsgTypeMMProtectionLimits        = "MM"
	MsgTypeMMProtectionLimitsResult  = "MR"
	MsgTypeMMProtectionReset         = "MZ"
)

// --- Standard header/trailer tags ---
const (
	TagBeginString  = 8
	TagBodyLength   = 9
	TagMsgType      = 35
	TagSenderCompID = 49
	TagTargetCompID = 56
	TagMsgSeqNum    = 34
	TagSendingTime  = 52
	TagCheckSum     = 10
	TagPossDupFlag  = 43
)

// --- Session admin tags ---
const (
	TagEncryptMethod        = 98
	TagHeartBtInt           = 108
	TagTestReqID            = 112
	TagBeginSeqNo           = 7
	TagEndSeqNo             = 16
	TagNewSeqNo             = 36
	TagGapFillFlag          = 123
	TagRefSeqNum            = 45
	TagRefTagID             = 371
	TagRefMsgType           = 372
	TagSessionRejectReason  = 373
	TagBusinessRejectReason = 380
	TagBusinessRejectRefID  = 379
	TagText                 = 58
	TagRawDataLength        = 95
	TagRawData              = 96
	TagUsername             = 553
	TagPassword             = 554
)

// --- Deribit custom session tags ---
const (
	TagCancelOnDisconnect             = 9001
	TagUseWordsafeTags                = 9002
	TagDontCancelOnDisconnect         = 9003
	TagDeribitAppID                   = 9004
	TagDeribitAppSig                  = 9005
	TagDeribitSequential              = 9007
	TagUnsubscribeExecutionReports    = 9009
	TagConnectionOnlyExecutionReports = 9010
	TagReportFillsAsExecReports       = 9015
	TagDisplayIncrementSteps          = 9018
)

// --- Order management tags ---
const (
	TagAccount               = 1
	TagAvgPx                 = 6
	TagClOrdID               = 11
	TagCumQty                = 14
	TagExecID                = 17
	TagExecInst              = 18
	TagOrderID               = 37
	TagOrderQty              = 38
	TagOrdStatus             = 39
	TagOrdType               = 40
	TagOrigClOrdID           = 41
	TagPrice                 = 44
	TagSide                  = 54
	TagSymbol                = 55
	TagTimeInForce           = 59
	TagTransactTime          = 60
	TagStopPx                = 99
	TagOrdRejReason          = 103
	TagCxlRejReason          = 102
	TagCxlRejResponseTo      = 434
	TagLastPx                = 31
	TagLastQty               = 32
	TagLeavesQty             = 151
	TagExecType              = 150
	TagDisplayQty            = 1138
	TagQtyType               = 854
	TagMassCancelRequestType = 530
	TagMassCancelResponse    = 531
	TagMassActionReportID    = 1369
	TagTotalAffectedOrders   = 533
	TagMassStatusReqID       = 584
	TagMassStatusReqType     = 585
	TagMassStatusReqIDType   = 9023
	TagTotNumReports         = 911
	TagLastRptRequested      = 912

	TagDeribitLabel        = 100010
	TagDeribitMMProtection = 9008
	TagDeribitCondTrigger  = 5127
)

// --- Market data tags ---
const (
	TagMDReqID                 = 262
	TagSubscriptionRequestType = 263
	TagMarketDepth             = 264
	TagMDUpdateType            = 265
	TagNoMDEntryTypes          = 267
	TagNoMDEntries             = 268
	TagMDEntryType             = 269
	TagMDEntryPx               = 270
	TagMDEntrySize             = 271
	TagMDEntryDate             = 272
	TagMDEntryTime             = 273
	TagMDUpdateAction          = 279
	TagMDReqRejReason          = 281
	TagNoRelatedSym            = 146
	TagMDEntryPositionNo       = 290
	TagMDEntryID               = 278
)

// --- Security discovery tags ---
const (
	TagSecurityReqID           = 320
	TagSecurityResponseID      = 322
	TagSecurityRequestType     = 321
	TagSecurityType            = 167
	TagCurrency                = 15
	TagSecurityListRequestType = 559
	TagSecurityStatusReqID     = 324
	TagSecurityStatus          = 965
	TagHighPx                  = 332
	TagLowPx                   = 333
	TagBuyVolume               = 330
	TagSellVolume              = 331
	TagSecurityExchange        = 207
	TagMinTradeVol             = 562
	TagContractMultiplier      = 231
	TagStrikePrice             = 202
	TagMaturityDate            = 541
)

// --- Position tags ---
const (
	TagPosReqID           = 710
	TagPosReqType         = 724
	TagPosMaintRptID      = 721
	TagPositionQty        = 703
	TagUnrealizedPnL      = 1247
	TagRealizedPnL        = 1248
	TagTotalNumPosReports = 727
	TagPosReqResult       = 728
	TagPosReqStatus       = 729
)

// --- Quote / RFQ tags ---
const (
	TagQuoteReqID       = 131
	TagQuoteID          = 117
	TagQuoteStatus      = 297
	TagQuoteRejectReason = 300
	TagQuoteStatusReqID = 649
	TagQuoteCancelType  = 298
	TagNoQuoteSets      = 296
	TagQuoteSetID       = 302
	TagNoQuoteEntries   = 295
	TagQuoteEntryID     = 299
	TagBidPx            = 132
	TagOfferPx          = 133
	TagBidSize          = 134
	TagOfferSize        = 135
	TagRFQReqID         = 644
	TagValidUntilTime   = 62

	// Deribit tag-block dialect for quote repeating groups (builder
	// flag selects this over the standard NoXXX-count dialect).
	TagDeribitQuoteBlockBase = 2000
	TagDeribitQuoteSetBase   = 3000
	TagDeribitQuoteEntryBase = 4000
)

// --- MM protection tags ---
const (
	TagMMProtDelta         = 9011
	TagMMProtVega          = 9012
	TagMMProtGamma         = 9013
	TagMMProtTheta         = 9014
	TagMMProtOrderLimit    = 9016
	TagMMProtPositionLimit = 9017
	TagMMProtTimeWindowMs  = 9019
	TagMMProtFrozenTime    = 9020
	TagMMProtResult        = 9021
	TagMMProtResetType     = 9022
)

// --- User admin tags ---
const (
	TagUserRequestID   = 923
	TagUsernameReq     = 553
	TagUserRequestType = 924
	TagNewPassword     = 925
	TagUserStatus      = 926
	TagUserStatusText  = 927
)

// --- Trade capture tags ---
const (
	TagTradeRequestID     = 568
	TagTradeRequestType   = 569
	TagTradeReportID      = 571
	TagTrdType            = 828
	TagNoDates            = 580
	TagTotNumTradeReports = 748
	TagLastRptRequested2  = 912
)

// --- Side (54) ---
const (
	SideBuy  = "1"
	SideSell = "2"
)

// --- OrdType (40) ---
const (
	OrdTypeMarket    = "1"
	OrdTypeLimit     = "2"
	OrdTypeStop      = "3"
	OrdTypeStopLimit = "4"
)

// --- TimeInForce (59) ---
const (
	TimeInForceDay = "0"
	TimeInForceGTC = "1"
	TimeInForceIOC = "3"
	TimeInForceFOK = "4"
	TimeInForceGTD = "6"
)

// --- ExecInst (18) ---
const (
	ExecInstPostOnly   = "6"
	ExecInstReduceOnly = "E"
)

// --- OrdStatus (39) ---
const (
	OrdStatusNew             = "0"
	OrdStatusPartiallyFilled = "1"
	OrdStatusFilled          = "2"
	OrdStatusCanceled        = "4"
	OrdStatusReplaced        = "5"
	OrdStatusPendingCancel   = "6"
	OrdStatusRejected        = "8"
	OrdStatusPendingNew      = "A"
	OrdStatusPendingReplace  = "E"
)

// --- ExecType (150) ---
const (
	ExecTypeNew           = "0"
	ExecTypePartialFill   = "1"
	ExecTypeFilled        = "2"
	ExecTypeCanceled      = "4"
	ExecTypePendingCancel = "6"
	ExecTypeRejected      = "8"
	ExecTypePendingNew    = "A"
	ExecTypeExpired       = "C"
	ExecTypeOrderStatus   = "I"
)

// --- CxlRejResponseTo (434) ---
const (
	CxlRejResponseToCancel  = "1"
	CxlRejResponseToReplace = "2"
)

// --- MDEntryType (269) ---
const (
	MDEntryTypeBid             = "0"
	MDEntryTypeOffer           = "1"
	MDEntryTypeTrade           = "2"
	MDEntryTypeIndexValue      = "3"
	MDEntryTypeSettlementPrice = "6"
)

// --- MDUpdateAction (279) ---
const (
	MDUpdateActionNew    = "0"
	MDUpdateActionChange = "1"
	MDUpdateActionDelete = "2"
)

// --- SubscriptionRequestType (263) ---
const (
	SubscriptionTypeSnapshot            = "0"
	SubscriptionTypeSnapshotPlusUpdates = "1"
	SubscriptionTypeUnsubscribe         = "2"
)

// --- MDReqRejReason (281) ---
const (
	MDReqRejReasonUnknownSymbol           = "0"
	MDReqRejReasonDuplicateMDReqID        = "1"
	MDReqRejReasonInsufficientBandwidth   = "2"
	MDReqRejReasonInsufficientPermission  = "3"
	MDReqRejReasonUnsupportedSubReqType   = "4"
	MDReqRejReasonUnknownMarketDepth      = "5"
	MDReqRejReasonUnsupportedMDUpdateType = "6"
	MDReqRejReasonOther                   = "D"
)

// --- SessionRejectReason (373) ---
const (
	SessionRejectReasonInvalidTagNumber        = "0"
	SessionRejectReasonRequiredTagMissing       = "1"
	SessionRejectReasonTagNotDefinedForMsgType  = "2"
	SessionRejectReasonUndefinedTag             = "3"
	SessionRejectReasonTagSpecifiedWithoutValue = "4"
	SessionRejectReasonValueIncorrectForTag     = "5"
	SessionRejectReasonIncorrectDataFormat      = "6"
	SessionRejectReasonDecryptionProblem        = "7"
	SessionRejectReasonSignatureProblem         = "8"
	SessionRejectReasonCompIDProblem            = "9"
	SessionRejectReasonSendingTimeAccuracy      = "10"
	SessionRejectReasonInvalidMsgType           = "11"
	SessionRejectReasonOther                    = "99"
)

// --- BusinessRejectReason (380) ---
const (
	BusinessRejectReasonOther                    = "0"
	BusinessRejectReasonUnknownID                = "1"
	BusinessRejectReasonUnknownSecurity          = "2"
	BusinessRejectReasonUnsupportedMessageType   = "3"
	BusinessRejectReasonApplicationNotAvailable  = "4"
	BusinessRejectReasonCondRequiredFieldMissing = "5"
	BusinessRejectReasonNotAuthorized             = "6"
)

// --- OrdRejReason (103) ---
const (
	OrdRejReasonBrokerOption   = "0"
	OrdRejReasonUnknownSymbol  = "1"
	OrdRejReasonExchangeClosed = "2"
	OrdRejReasonExceedsLimit   = "3"
	OrdRejReasonTooLate        = "4"
	OrdRejReasonUnknownOrder   = "5"
	OrdRejReasonDuplicateOrder = "6"
	OrdRejReasonOther          = "99"
)

// --- MassCancelRequestType (530) ---
const (
	MassCancelBySymbol       = "1"
	MassCancelBySecurityType = "4"
	MassCancelByDeribitLabel = "7"
	MassCancelAllOrders      = "A"
)

// --- MassCancelResponse (531) ---
const (
	MassCancelResponseCancelRequestRejected   = "0"
	MassCancelResponseCancelledBySymbol       = "1"
	MassCancelResponseCancelledBySecurityType = "4"
	MassCancelResponseCancelledByDeribitLabel = "7"
	MassCancelResponseCancelledAllOrders      = "8"
)

// --- MassStatusReqType (585) ---
const (
	MassStatusReqSpecificOrder = "1"
	MassStatusReqAllOrders     = "7"
)

// --- MassStatusReqIDType (9023) ---
// Identifies what MassStatusReqID holds when a mass status request is
// narrowed to a single order.
const (
	MassStatusReqIDTypeOrigClOrdID  = "0"
	MassStatusReqIDTypeClOrdID      = "1"
	MassStatusReqIDTypeDeribitLabel = "2"
)

// --- QuoteRejectReason (300) ---
const (
	QuoteRejectReasonUnknownSymbol  = "1"
	QuoteRejectReasonExchangeClosed = "2"
	QuoteRejectReasonExceedsLimit   = "3"
	QuoteRejectReasonDuplicate      = "6"
	QuoteRejectReasonInvalidPrice   = "8"
	QuoteRejectReasonOther          = "99"
)

// --- QuoteStatus (297) ---
const (
	QuoteStatusAccepted = "0"
	QuoteStatusCanceled = "1"
	QuoteStatusRejected = "5"
	QuoteStatusExpired  = "7"
	QuoteStatusQuery    = "11"
	QuoteStatusActive   = "16"
)

// --- UserRequestType (924) ---
const (
	UserRequestTypeLogOnUser      = "1"
	UserRequestTypeLogOffUser     = "2"
	UserRequestTypeChangePassword = "3"
	UserRequestTypeRequestStatus  = "4"
)

// --- UserStatus (926) ---
const (
	UserStatusLoggedIn          = "1"
	UserStatusNotLoggedIn       = "2"
	UserStatusUserNotRecognised = "3"
	UserStatusPasswordIncorrect = "4"
	UserStatusPasswordChanged   = "5"
	UserStatusOther             = "6"
)

// --- MMProtectionResetType ---
const (
	MMProtResetCounters = "0"
	MMProtResetLimits   = "1"
)

// --- Flags ---
const (
	FlagYes = "Y"
	FlagNo  = "N"
)
