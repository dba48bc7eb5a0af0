package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/insightwave/assetgen"
	"github.com/insightwave/assetgen/utils"
)

const banner = `
┬┌┐┌┌─┐┬┌─┐┬ ┬┌┬┐┬ ┬┌─┐┬  ┬┌─┐
││││└─┐││ ┬├─┤ │ │││├─┤└┐┌┘├┤
┴┘└┘└─┘┴└─┘┴ ┴ ┴ └┴┘┴ ┴ └┘ └─┘

Brand asset generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	fmt.Fprintf(os.Stderr, banner, Version)

	gen, err := assetgen.NewGenerator(".")
	if err != nil {
		fatal(err)
	}
	defer gen.Close()

	// The spinner only makes sense on an interactive terminal; pipe the
	// status lines through plainly otherwise. While the spinner owns the
	// terminal line the stage lines are collected and replayed after it
	// stops.
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	gen.Verbose = true

	var stages bytes.Buffer
	var spinner *utils.Spinner
	if interactive {
		gen.Status = &stages

		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("◈ INSIGHTWAVE", utils.StatusMessage),
			utils.DecorateText("⇢ generating brand assets...", utils.DefaultMessage))
		spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)

		// Capture CTRL-C and restore the cursor visibility back.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			spinner.RestoreCursor()
			gen.Close()
			os.Exit(1)
		}()

		spinner.Start()
	}

	now := time.Now()
	err = gen.Run()

	if spinner != nil {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("◈ INSIGHTWAVE", utils.StatusMessage),
				utils.DecorateText("asset generation failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage))
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("◈ INSIGHTWAVE", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the asset set has been generated successfully ✔", utils.SuccessMessage))
		}
		spinner.Stop()
		os.Stderr.Write(stages.Bytes())
	}

	if err != nil {
		gen.Close()
		fatal(err)
	}

	fmt.Fprintf(os.Stderr, "\nAssets have been generated in: %s\nExecution time: %s\n",
		utils.DecorateText("assets/", utils.SuccessMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// fatal reports the failure message together with the full diagnostic trace
// and exits with a non-zero status.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("Error:", utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage))
	fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateText(fmt.Sprintf("%+v", err), utils.MutedMessage))
	os.Exit(1)
}
