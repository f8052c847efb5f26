package cryptofolio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store owns the two on-disk documents.
//
// Loading is deliberately tolerant: a missing or corrupt document becomes an
// empty ledger or default settings, because an interactive tracker losing its
// ledger should degrade to a fresh start rather than refuse to run. The
// strict Decode functions keep that collapse an explicit choice made here,
// not a silent catch-all. Saving failures do propagate: there is no journal
// to fall back on, so the command boundary reports them and terminates.
type Store struct {
	LedgerFile   string
	SettingsFile string
}

// DefaultStore returns a store with the conventional document names under
// dir ("" means the current directory).
func DefaultStore(dir string) Store {
	return Store{
		LedgerFile:   filepath.Join(dir, "portfolio.json"),
		SettingsFile: filepath.Join(dir, "settings.json"),
	}
}

// LoadLedger reads the ledger document. Absent or unparsable documents load
// as an empty ledger, never an error.
func (s Store) LoadLedger() *Ledger {
	f, err := os.Open(s.LedgerFile)
	if err != nil {
		return NewLedger()
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		log.Printf("warning, ignoring corrupt ledger %q: %v", s.LedgerFile, err)
		return NewLedger()
	}
	return l
}

// SaveLedger overwrites the ledger document.
func (s Store) SaveLedger(l *Ledger) error {
	f, err := os.Create(s.LedgerFile)
	if err != nil {
		return fmt.Errorf("could not write ledger %q: %w", s.LedgerFile, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("could not write ledger %q: %w", s.LedgerFile, err)
	}
	return f.Close()
}

// LoadSettings reads the settings document, defaulting like LoadLedger.
func (s Store) LoadSettings() Settings {
	f, err := os.Open(s.SettingsFile)
	if err != nil {
		return DefaultSettings()
	}
	defer f.Close()

	settings, err := DecodeSettings(f)
	if err != nil {
		log.Printf("warning, ignoring corrupt settings %q: %v", s.SettingsFile, err)
		return DefaultSettings()
	}
	return settings
}

// SaveSettings overwrites the settings document.
func (s Store) SaveSettings(settings Settings) error {
	f, err := os.Create(s.SettingsFile)
	if err != nil {
		return fmt.Errorf("could not write settings %q: %w", s.SettingsFile, err)
	}
	defer f.Close()

	if err := EncodeSettings(f, settings); err != nil {
		return fmt.Errorf("could not write settings %q: %w", s.SettingsFile, err)
	}
	return f.Close()
}
