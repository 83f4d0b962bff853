package types

// CLIArgs representa os argumentos de linha de comando já interpretados.
type CLIArgs struct {
	ConfigFile string
	File       string
	Event      string
	Year       string
	Dir        string
	ReportType []string
}
