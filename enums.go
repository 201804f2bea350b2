package smartlead

// CampaignStatus is the lifecycle state of a campaign. START is only
// valid as a target state when patching a drafted campaign.
type CampaignStatus string

const (
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusStopped   CampaignStatus = "STOPPED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusDrafted   CampaignStatus = "DRAFTED"
	CampaignStatusStart     CampaignStatus = "START"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusPaused, CampaignStatusStopped, CampaignStatusCompleted,
		CampaignStatusActive, CampaignStatusDrafted, CampaignStatusStart:
		return true
	default:
		return false
	}
}

// LeadStatus describes where a lead is in its campaign sequence.
type LeadStatus string

const (
	// LeadStatusStarted marks a lead scheduled to start that has not
	// yet received the first email in the sequence.
	LeadStatusStarted LeadStatus = "STARTED"
	// LeadStatusCompleted marks a lead that has received every email
	// in the campaign.
	LeadStatusCompleted LeadStatus = "COMPLETED"
	// LeadStatusBlocked marks a lead whose email bounced or that was
	// added to the global block list.
	LeadStatusBlocked LeadStatus = "BLOCKED"
	// LeadStatusInProgress marks a lead that has received at least one
	// email in the sequence.
	LeadStatusInProgress LeadStatus = "INPROGRESS"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusStarted, LeadStatusCompleted, LeadStatusBlocked, LeadStatusInProgress:
		return true
	default:
		return false
	}
}

// EmailStatus filters statistics rows by what the recipient did.
type EmailStatus string

const (
	EmailStatusOpened       EmailStatus = "opened"
	EmailStatusClicked      EmailStatus = "clicked"
	EmailStatusReplied      EmailStatus = "replied"
	EmailStatusUnsubscribed EmailStatus = "unsubscribed"
	EmailStatusBounced      EmailStatus = "bounced"
)

func (s EmailStatus) Valid() bool {
	switch s {
	case EmailStatusOpened, EmailStatusClicked, EmailStatusReplied,
		EmailStatusUnsubscribed, EmailStatusBounced:
		return true
	default:
		return false
	}
}

// TrackSetting disables a tracking channel for a campaign.
type TrackSetting string

const (
	TrackSettingDontTrackEmailOpen TrackSetting = "DONT_TRACK_EMAIL_OPEN"
	TrackSettingDontTrackLinkClick TrackSetting = "DONT_TRACK_LINK_CLICK"
	TrackSettingDontTrackReply     TrackSetting = "DONT_TRACK_REPLY_TO_AN_EMAIL"
)

func (s TrackSetting) Valid() bool {
	switch s {
	case TrackSettingDontTrackEmailOpen, TrackSettingDontTrackLinkClick, TrackSettingDontTrackReply:
		return true
	default:
		return false
	}
}

// StopLeadSetting picks the lead action that halts further sends.
type StopLeadSetting string

const (
	StopLeadSettingClickOnALink StopLeadSetting = "CLICK_ON_A_LINK"
	StopLeadSettingOpenAnEmail  StopLeadSetting = "OPEN_AN_EMAIL"
	StopLeadSettingReplyToEmail StopLeadSetting = "REPLY_TO_AN_EMAIL"
)

func (s StopLeadSetting) Valid() bool {
	switch s {
	case StopLeadSettingClickOnALink, StopLeadSettingOpenAnEmail, StopLeadSettingReplyToEmail:
		return true
	default:
		return false
	}
}

// WebhookEventType selects which campaign events a webhook fires on.
type WebhookEventType string

const (
	WebhookEventEmailSent           WebhookEventType = "EMAIL_SENT"
	WebhookEventEmailOpen           WebhookEventType = "EMAIL_OPEN"
	WebhookEventEmailLinkClick      WebhookEventType = "EMAIL_LINK_CLICK"
	WebhookEventEmailReply          WebhookEventType = "EMAIL_REPLY"
	WebhookEventLeadUnsubscribed    WebhookEventType = "LEAD_UNSUBSCRIBED"
	WebhookEventLeadCategoryUpdated WebhookEventType = "LEAD_CATEGORY_UPDATED"
)

func (s WebhookEventType) Valid() bool {
	switch s {
	case WebhookEventEmailSent, WebhookEventEmailOpen, WebhookEventEmailLinkClick,
		WebhookEventEmailReply, WebhookEventLeadUnsubscribed, WebhookEventLeadCategoryUpdated:
		return true
	default:
		return false
	}
}

// EmailType is the provider backing an email account.
type EmailType string

const (
	EmailTypeGmail   EmailType = "GMAIL"
	EmailTypeSMTP    EmailType = "SMTP"
	EmailTypeZoho    EmailType = "ZOHO"
	EmailTypeOutlook EmailType = "OUTLOOK"
)

func (s EmailType) Valid() bool {
	switch s {
	case EmailTypeGmail, EmailTypeSMTP, EmailTypeZoho, EmailTypeOutlook:
		return true
	default:
		return false
	}
}

// ClientPermission scopes what a workspace client account may do.
type ClientPermission string

const (
	ClientPermissionReplyMasterInbox ClientPermission = "reply_master_inbox"
	ClientPermissionFullAccess       ClientPermission = "full_access"
)

func (s ClientPermission) Valid() bool {
	switch s {
	case ClientPermissionReplyMasterInbox, ClientPermissionFullAccess:
		return true
	default:
		return false
	}
}
