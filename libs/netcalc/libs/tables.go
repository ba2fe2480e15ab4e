package libs

type Network int

const (
	GSM900 Network = iota
	GSM1800
	UMTS2100
	LTE1800
)

type ChannelRange struct {
	Start int
	End   int
}

type Capabilities struct {
	Technology  string
	MaxDataRate string
	Features    string
	Modulation  string
}

type NetPlan struct {
	Name     string
	Ranges   []ChannelRange
	Uplink   float64
	Downlink float64
	Step     float64
	Spacing  float64
	Caps     Capabilities
}

var (
	// Scan order is fixed, the first matching range wins
	NetworkOrder [4]Network = [4]Network{GSM900, GSM1800, UMTS2100, LTE1800}
)

var (
	CAPS2G Capabilities = Capabilities{
		Technology:  "2G",
		MaxDataRate: "115 Kbps (GPRS), 384 Kbps (EDGE)",
		Features:    "Voice calls, SMS, Basic data",
		Modulation:  "GMSK, 8PSK (EDGE)",
	}
	CAPS3G Capabilities = Capabilities{
		Technology:  "3G",
		MaxDataRate: "42 Mbps (DC-HSPA+)",
		Features:    "Video calls, High-speed data, Enhanced security",
		Modulation:  "QPSK, 16QAM",
	}
	CAPS4G Capabilities = Capabilities{
		Technology:  "4G",
		MaxDataRate: "Up to 150 Mbps",
		Features:    "High-speed data, VoLTE, Low latency",
		Modulation:  "QPSK, 16QAM, 64QAM",
	}
)

var (
	Netplans map[Network]NetPlan = map[Network]NetPlan{
		GSM900: {
			Name:     "GSM 900",
			Ranges:   []ChannelRange{{Start: 1, End: 124}, {Start: 128, End: 251}},
			Uplink:   880.2,
			Downlink: 925.2,
			Step:     0.2,
			Spacing:  0.2,
			Caps:     CAPS2G,
		},
		GSM1800: {
			Name:     "GSM 1800",
			Ranges:   []ChannelRange{{Start: 512, End: 885}, {Start: 1024, End: 1885}},
			Uplink:   1710.0,
			Downlink: 1805.0,
			Step:     0.2,
			Spacing:  0.2,
			Caps:     CAPS2G,
		},
		UMTS2100: {
			Name:     "UMTS 2100",
			Ranges:   []ChannelRange{{Start: 10562, End: 10687}},
			Uplink:   1922.4,
			Downlink: 2112.4,
			Step:     0.2, // formula step, NOT the advertised spacing below
			Spacing:  5.0,
			Caps:     CAPS3G,
		},
		LTE1800: {
			Name:     "LTE 1800",
			Ranges:   []ChannelRange{{Start: 300, End: 379}},
			Uplink:   1710.0,
			Downlink: 1805.0,
			Step:     0.1,
			Spacing:  0.1,
			Caps:     CAPS4G,
		},
	}
)
