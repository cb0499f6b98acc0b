package settings

type UpsertSettingRequest struct {
	Value string `json:"value" validate:"required"`
}
