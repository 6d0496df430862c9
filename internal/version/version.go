package version

import "fmt"

// Заполняется на сборке через -ldflags:
//
//	-X gloomdelve-server/internal/version.BuildCommit=$(git rev-parse --short HEAD)
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// VersionInfo - метаданные сборки в структурном виде.
type VersionInfo struct {
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
}

// Info возвращает метаданные сборки. Безопасно в любой момент.
func Info() VersionInfo {
	return VersionInfo{
		BuildDate: coalesce(BuildDate, "unknown"),
		Commit:    coalesce(BuildCommit, "unknown"),
		Branch:    coalesce(BuildBranch, "unknown"),
	}
}

// String возвращает человекочитаемую строку сборки.
func String() string {
	info := Info()
	return fmt.Sprintf("Build %s commit[%s] branch[%s]",
		info.BuildDate, info.Commit, info.Branch)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
