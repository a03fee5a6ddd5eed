// Package buildinfo хранит сведения о сборке, переданные через -ldflags.
package buildinfo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// notAvailable подставляется вместо незаданных при сборке значений
const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New создает Info; пустые значения заменяются на "N/A"
func New(version, date, commit string) *Info {
	return &Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Fprint выводит информацию о сборке построчно
func (info *Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.Version, info.Date, info.Commit)
	return err
}

// Fields возвращает информацию о сборке в виде полей zap
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", info.Version),
		zap.String("build_date", info.Date),
		zap.String("commit", info.Commit),
	}
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}
