package jsonreader

type ViewConf struct {
	ShowCaps        bool `json:"ShowCaps"`
	ShowDialerCodes bool `json:"ShowDialerCodes"`
	ShowHz          bool `json:"ShowHz"`
}
