package libs

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	colo "github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func ScreenClear() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}

func ParseARFCN(text string) (int, error) {
	text = strings.TrimSpace(text)
	if !IsARFCNText(text) {
		return 0, &ParseError{Text: text}
	}
	arfcn, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Text: text}
	}
	return arfcn, nil
}

func Loading(msg string, mt chan bool) {
	var idx int = 0
	var spinner [4]string = [4]string{"|", "/", "-", "\\"}
	for {
		select {
			case <- mt:
				fmt.Print("\r" + msg + " ... Done\n")
				return
			default:
				fmt.Print("\r" + msg + " [" + spinner[idx] + "] ... ")
				idx = (idx + 1) % 4
				time.Sleep(120 * time.Millisecond)
		}
	}
}

func SetupColors() Colors {
	colo.White("")
	var noColor bool = (os.Getenv("NO_COLOR") != "") || os.Getenv("TERM") == "dumb" ||
	(!isatty.IsTerminal(os.Stdout.Fd()))
	var color Colors
    if noColor {
		color = Colors{
			Red: "",
			White: "",
			Yellow: "",
			Blue: "",
			Purple: "",
			Cyan: "",
			Orange: "",
			Green: "",
			Lightblue: "",
			Null: "",
		}
	} else {
		color = Colors{
			Red: "\033[1;31m",
			White: "\033[1;37m",
			Yellow: "\033[38;5;227m",
			Blue: "\033[1;34m",
			Purple: "\033[1;35m",
			Cyan: "\033[1;36m",
			Orange: "\033[1;38;5;208m",
			Green: "\033[1;32m",
			Lightblue: "\033[38;5;117",
			Null: "\033[0m",
    	}
	}
	fmt.Print(color.White)
	return color
}

func PrintLogo(color Colors, statusmsg string) {
	ScreenClear()
	fmt.Println()
    fmt.Println(color.Green + "        :7J55J7:        ")
    fmt.Println(color.Green + "      !G&@@@@@@&G!      ")
    fmt.Println(color.Green + "    Y@@@#!    !#@@@Y    " + color.Blue + "| ")
    fmt.Println(color.Green + "   ^&@@@5      5@@@&^   " + color.Blue + "| " + statusmsg)
    fmt.Println(color.Green + "   J@@@#.      .#@@@J   " + color.Blue + "| ")
    fmt.Println(color.Green + "   5@@@P        P@@@5   " + color.Blue + "| Arfcast for fun!")
    fmt.Println(color.Green + "   P@@@&&&&&&&&&&@@@P   " + color.Blue + "| Version 1.0.0")
    fmt.Println(color.Green + "   B@@@G55555555G@@@B   " + color.Blue + "| ")
    fmt.Println(color.Green + "   #@@@7        7@@@#   " + color.Blue + "| https://github.com/ANDRVV/arfcast")
    fmt.Println(color.Green + "  .&@@@^        ^@@@&.  " + color.Blue + "| ")
    fmt.Println(color.Green + "  :@@@@:        :@@@@:  " + color.Blue + "| ")
    fmt.Println(color.Green + "  ~@@@#.        .#@@@~  " + color.Blue + "| ")
    fmt.Println(color.Green + "  7@@@5          5@@@7  " + color.Blue + "|                    Andrea Vaccaro")
    fmt.Println(color.Green + "  ^P#&J          J&#P^  " + color.White + "\n")
}

func PrintUsage() {
	var writer *tabwriter.Writer = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "Usage: arfcast")
	fmt.Fprintln(writer, "")
	fmt.Fprintln(writer, "Arfcast takes no arguments, every key is read from the form:")
	fmt.Fprintln(writer, "")
	fmt.Fprintln(writer, "Key\tAction")
	fmt.Fprintf(writer, "%s\t%s\n", "0-9 -", "Type an ARFCN into the form")
	fmt.Fprintf(writer, "%s\t%s\n", "BACKSPACE", "Delete the last typed digit")
	fmt.Fprintf(writer, "%s\t%s\n", "ENTER", "Calculate uplink and downlink frequencies")
	fmt.Fprintf(writer, "%s\t%s\n", "C", "Clear the form and the last result")
	fmt.Fprintf(writer, "%s\t%s\n", "ESC CTRL-C", "Exit from arfcast")
	writer.Flush()
}

func SignalError(color Colors, msg string) {
	defer os.Exit(1)
	fmt.Println("[" + color.Red + "ERROR" + color.White + "] " + msg)
    time.Sleep(800 * time.Millisecond)
}

func SecondsToHMS(seconds int) string {
	var hours int = seconds / 3600
	seconds %= 3600
	var minutes int = seconds / 60
	seconds %= 60
	var result string
	if hours > 0 {
		result += strconv.Itoa(hours) + "h"
        if minutes > 0 {
            result += " "
        }
	}
	if minutes > 0 {
		result += strconv.Itoa(minutes) + "m"
        if seconds > 0 {
            result += " "
        }
	}
	if seconds > 0 || result == "" {
		result += strconv.Itoa(seconds) + "s"
	}
	return result
}
