package libs

import (
	"arfcast/libs/netcalc"
	"arfcast/libs/netcalc/libs"
)

type Colors struct {
    Red       string
    White     string
    Yellow    string
    Blue      string
    Purple    string
    Cyan      string
    Orange    string
    Green     string
    Lightblue string
    Null      string
}

type CalcTable struct {
    ARFCN   string
    Result  netcalc.Result
    Center  float64
    Spacing float64
    Caps    libs.Capabilities
    Done    bool
    ErrMsg  string
}
