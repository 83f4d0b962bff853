package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lfmorato/event-report-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$                            /$$      /$$$$$$$                                           /$$
        | $$_____/                           | $$     | $$__  $$                                         | $$
        | $$    /$$    /$$ /$$$$$$  /$$$$$$$ /$$$$$$  | $$  \ $$  /$$$$$$   /$$$$$$   /$$$$$$   /$$$$$$ /$$$$$$
        | $$$$$|  $$  /$$//$$__  $$| $$__  $|_  $$_/  | $$$$$$$/ /$$__  $$ /$$__  $$ /$$__  $$ /$$__  $|_  $$_/
        | $$__/ \  $$/$$/| $$$$$$$$| $$  \ $$ | $$    | $$__  $$| $$$$$$$$| $$  \ $$| $$  \ $$| $$  \__/ | $$
        | $$     \  $$$/ | $$_____/| $$  | $$ | $$ /$$| $$  \ $$| $$_____/| $$  | $$| $$  | $$| $$       | $$ /$$
        | $$$$$$$$\  $/  |  $$$$$$$| $$  | $$ |  $$$$/| $$  | $$|  $$$$$$$| $$$$$$$/|  $$$$$$/| $$       |  $$$$/
        |________/ \_/    \_______/|__/  |__/  \___/  |__/  |__/ \_______/| $$____/  \______/ |__/        \___/
                                                                          | $$
                                                                          | $$
                                                                          |__/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Event Report Dashboard CLI (v%s)", formattedVersion)))
}
