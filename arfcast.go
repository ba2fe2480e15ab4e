package main

import (
	"arfcast/libs"
	"arfcast/libs/jsonreader"
	"arfcast/libs/netcalc"
	"errors"
	"flag"
	"fmt"
	"github.com/eiannone/keyboard"
	colo "github.com/fatih/color"
	"github.com/rodaine/table"
	"golang.design/x/hotkey"
	"os"
	"sync"
	"time"
)

const (
	fps int = 25
)

var (
	arfcnField  string
	calcCount   int
	color       libs.Colors
	caltab      libs.CalcTable
	viewconf    jsonreader.ViewConf
	chartNET    table.Table
	dialercodes map[string]string
	mt          chan bool    = make(chan bool)
	mutex       sync.RWMutex = sync.RWMutex{}
	elapsedTime time.Time
	oldmoment   bool = true
	panicExit   bool
)

// Collect all flags
func collect() {
	flag.Usage = func() { libs.PrintUsage(); os.Exit(1) }
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}
}

func signalExit() {
	defer os.Exit(0)
	if oldmoment {
		mt <- true
	}
	time.Sleep(200 * time.Millisecond)
	fmt.Println()
	libs.NOTIMECustomLog(color, color.Blue, "EXIT", "Arfcast closed.")
	time.Sleep(800 * time.Millisecond)
}

// Start recorder for CTRL-C -> exit
func startSignal() {
	var regKey *hotkey.Hotkey = hotkey.New([]hotkey.Modifier{hotkey.ModCtrl}, hotkey.KeyC)
	regKey.Register()
	defer regKey.Unregister()
	for {
		<-regKey.Keydown()
		<-regKey.Keyup()
		time.Sleep(100 * time.Millisecond)
		panicExit = true
		keyboard.Close()
		time.Sleep(600 * time.Millisecond)
		signalExit()
	}
}

// Setup network ranges table chart
func setupChart() {
	chartNET = table.New("NETWORK", "TECH", "RANGES", "SPACING")
	chartNET.WithHeaderFormatter(colo.New(colo.BgHiBlue, colo.FgHiWhite).SprintfFunc())
	for _, plan := range netcalc.GetNetworks() {
		chartNET.AddRow(plan.Name, plan.Caps.Technology, libs.FormatRanges(plan.Ranges), libs.FormatSpacing(plan.Spacing))
	}
}

// Preliminaries (colors, view config, dialer codes, ranges chart...)
func setup() {
	go startSignal()
	libs.ScreenClear()
	color = libs.SetupColors()
	libs.PrintLogo(color, "Initializing...")
	libs.Log(color, "Arfcast's network resolver started.")
	go libs.Loading(fmt.Sprintf("%s[%sINIT%s] Loading resources", color.White, color.Green, color.White), mt)
	var warning1, warning2 bool
	viewconf, warning1 = jsonreader.ReadViewConf()
	dialercodes, warning2 = jsonreader.ReadDialerCodes()
	setupChart()
	time.Sleep(1500 * time.Millisecond)
	mt <- true
	for warnidx, warn := range []bool{warning1, warning2} {
		if warn {
			switch warnidx {
			case 0:
				libs.Warning(color, "Failure to read the view config, set default.")
			case 1:
				libs.Warning(color, "Failure to read the dialer codes db, set default.")
			}
			time.Sleep(1200 * time.Millisecond)
		}
	}
	if warning1 && warning2 {
		libs.Error(color, "No resource files found.")
		time.Sleep(1200 * time.Millisecond)
	}
	libs.Init(color, "Network tables ready.")
	oldmoment = false
	time.Sleep(1 * time.Second)
}

// Update calculator form
func update() {
	if elapsedTime == (time.Time{}) {
		elapsedTime = time.Now()
	}
	for {
		time.Sleep(time.Duration(1000/fps) * time.Millisecond)
		if panicExit {
			for {
				time.Sleep(2 * time.Second)
			}
		}
		printForm()
	}
}

// Resolve typed ARFCN to frequencies and capabilities
func calculate() {
	arfcn, err := libs.ParseARFCN(arfcnField)
	if err != nil {
		caltab = libs.CalcTable{ErrMsg: "Invalid input, type a whole ARFCN number."}
		return
	}
	result, err := netcalc.ComputeFrequencies(arfcn)
	if err != nil {
		var invalidChannel *netcalc.InvalidChannelError
		if errors.As(err, &invalidChannel) {
			caltab = libs.CalcTable{ErrMsg: invalidChannel.Error()}
		} else {
			caltab = libs.CalcTable{ErrMsg: "An unexpected error occurred."}
		}
		return
	}
	caltab = libs.CalcTable{
		ARFCN:   arfcnField,
		Result:  result,
		Center:  netcalc.GetCenterFrequency(result.Uplink, result.Downlink),
		Spacing: netcalc.GetChannelSpacing(result.Network),
		Caps:    netcalc.GetCapabilities(result.Network),
		Done:    true,
	}
	calcCount++
}

// Keyboard registration of the ARFCN form field
func regARFCN() {
	event, err := keyboard.GetKeys(10)
	if err != nil {
		libs.SignalError(color, "Unable to start keyboard listener.")
	}
	for {
		eventdata := <-event
		mutex.Lock()
		if eventdata.Key == keyboard.KeyEsc {
			panicExit = true
			keyboard.Close()
			mutex.Unlock()
			signalExit()
			return
		}
		if (eventdata.Key == keyboard.KeyBackspace || eventdata.Key == keyboard.KeyBackspace2) && len(arfcnField) > 0 {
			arfcnField = arfcnField[:len(arfcnField)-1]
		}
		if eventdata.Key == keyboard.KeyEnter {
			calculate()
		}
		if eventdata.Rune == 'c' || eventdata.Rune == 'C' {
			arfcnField, caltab = "", libs.CalcTable{}
		}
		if len(arfcnField) < 6 && libs.IsARFCNRune(eventdata.Rune) {
			if eventdata.Rune != '-' || len(arfcnField) == 0 {
				arfcnField += fmt.Sprintf("%c", eventdata.Rune)
			}
		}
		mutex.Unlock()
	}
}

func engine() {
	go regARFCN()
	update()
}

// Compose and print completed form
func printForm() {
	mutex.Lock()
	var row1 string = libs.GetRow1(color, arfcnField, calcCount, elapsedTime)
	var rowcalc string = libs.GetResultRow(color, caltab, viewconf)
	mutex.Unlock()
	libs.ScreenClear()
	fmt.Print("\n" + color.White + "[" + color.Green + "ARFCAST" + color.White + "] Cellular network ARFCN calculator\n")
	fmt.Print(row1)
	fmt.Println(color.White + "Network Ranges")
	chartNET.Print()
	fmt.Print(rowcalc)
	if viewconf.ShowDialerCodes {
		fmt.Print(libs.GetDialerRow(color, dialercodes))
	}
	fmt.Println()
	fmt.Print(libs.GetRow2(color))
	if panicExit {
		return
	}
}

func main() {
	collect()
	setup()
	engine()
}
