package dto

type BuyerRequest struct {
	BuyerID        string `json:"buyer_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateSessionRequest struct {
	Amount        int64        `json:"amount" binding:"required,gt=0"`
	Currency      string       `json:"currency" binding:"required,len=3"`
	SecurityLevel string       `json:"security_level"`
	Buyer         BuyerRequest `json:"buyer"`
}

type SubmitArtifactRequest struct {
	ArtifactRef string `json:"artifact_ref" binding:"required"`
}

type SelectLocationRequest struct {
	LocationID string `json:"location_id" binding:"required"`
}

type SelectSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type TimeWindowRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateLocationRequest struct {
	Name            string                         `json:"name" binding:"required"`
	Address         string                         `json:"address" binding:"required"`
	SafetyLevel     string                         `json:"safety_level"`
	StaffContact    string                         `json:"staff_contact"`
	Timezone        string                         `json:"timezone"`
	CapacityPerSlot int                            `json:"capacity_per_slot" binding:"gte=0"`
	OperatingHours  map[string][]TimeWindowRequest `json:"operating_hours" binding:"required"`
}

type SetLocationEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
