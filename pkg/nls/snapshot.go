package nls

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Snapshot is a file-backed Catalog holding the answers a live platform gave.
// It lets an export run on any OS and be replayed byte for byte.
type Snapshot struct {
	Source    string            `yaml:"source" toml:"source" json:"source"`
	Entries   []SnapshotLocale  `yaml:"locales" toml:"locales" json:"locales"`
	CodePages map[string]string `yaml:"code_pages" toml:"code_pages" json:"code_pages"`

	list   []models.LocaleEntry
	byName map[string]*SnapshotLocale
	byLCID map[uint32]*SnapshotLocale
}

// SnapshotLocale is one catalog entry. LCID 0 means the name did not resolve.
type SnapshotLocale struct {
	Name  string            `yaml:"name" toml:"name" json:"name"`
	Flags []string          `yaml:"flags,omitempty" toml:"flags,omitempty" json:"flags,omitempty"`
	LCID  uint32            `yaml:"lcid,omitempty" toml:"lcid,omitempty" json:"lcid,omitempty"`
	Info  map[string]string `yaml:"info,omitempty" toml:"info,omitempty" json:"info,omitempty"`
}

// NewSnapshot builds an indexed snapshot from its parts
func NewSnapshot(source string, locales []SnapshotLocale, codePages map[string]string) (*Snapshot, error) {
	s := &Snapshot{
		Source:    source,
		Entries:   locales,
		CodePages: codePages,
	}
	if err := s.index(); err != nil {
		return nil, err
	}
	return s, nil
}

// Capture records everything the exporter would ask c into a snapshot
func Capture(c Catalog, source string) (*Snapshot, error) {
	entries, err := c.Locales()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate locales: %w", err)
	}

	locales := make([]SnapshotLocale, 0, len(entries))
	codePages := make(map[string]string)

	for _, entry := range entries {
		loc := SnapshotLocale{
			Name:  entry.Name,
			Flags: entry.Flags.Names(),
		}

		lcid, err := c.LCID(entry.Name)
		if err != nil {
			locales = append(locales, loc)
			continue
		}
		loc.LCID = lcid
		loc.Info = make(map[string]string)

		for _, field := range InfoFields {
			value, err := c.LocaleInfo(lcid, field)
			if err != nil {
				continue
			}
			loc.Info[field.Key()] = value

			if field != FieldANSICodePage && field != FieldOEMCodePage {
				continue
			}
			cp, err := ParseCodePage(value)
			if err != nil || cp == 0 {
				continue
			}
			key := strconv.FormatUint(uint64(cp), 10)
			if _, seen := codePages[key]; seen {
				continue
			}
			if name, err := c.CodePageName(cp); err == nil {
				codePages[key] = name
			}
		}

		locales = append(locales, loc)
	}

	return NewSnapshot(source, locales, codePages)
}

// LoadSnapshot reads a snapshot from a .yaml, .yml, .toml or .json file
func LoadSnapshot(path string) (*Snapshot, error) {
	format, err := snapshotFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s Snapshot
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &s)
	case "toml":
		err = toml.Unmarshal(data, &s)
	case "json":
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s snapshot: %w", format, err)
	}

	if err := s.index(); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the snapshot in the format implied by the file extension
func (s *Snapshot) Save(path string) error {
	format, err := snapshotFormat(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode yaml snapshot: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml snapshot: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return fmt.Errorf("failed to encode toml snapshot: %w", err)
		}
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json snapshot: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func (s *Snapshot) Locales() ([]models.LocaleEntry, error) {
	out := make([]models.LocaleEntry, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *Snapshot) LCID(name string) (uint32, error) {
	loc, ok := s.byName[name]
	if !ok || loc.LCID == 0 {
		return 0, fmt.Errorf("%w: locale %q", ErrNotFound, name)
	}
	return loc.LCID, nil
}

func (s *Snapshot) LocaleInfo(lcid uint32, field InfoField) (string, error) {
	loc, ok := s.byLCID[lcid]
	if !ok {
		return "", fmt.Errorf("%w: lcid 0x%04X", ErrNotFound, lcid)
	}
	value, ok := loc.Info[field.Key()]
	if !ok {
		return "", fmt.Errorf("%w: %s of lcid 0x%04X", ErrNotFound, field, lcid)
	}
	return value, nil
}

func (s *Snapshot) CodePageName(codePage uint32) (string, error) {
	name, ok := s.CodePages[strconv.FormatUint(uint64(codePage), 10)]
	if !ok {
		return "", fmt.Errorf("%w: code page %d", ErrNotFound, codePage)
	}
	return name, nil
}

func (s *Snapshot) index() error {
	s.list = make([]models.LocaleEntry, 0, len(s.Entries))
	s.byName = make(map[string]*SnapshotLocale, len(s.Entries))
	s.byLCID = make(map[uint32]*SnapshotLocale)

	for i := range s.Entries {
		loc := &s.Entries[i]
		flags, err := models.ParseLocaleFlags(loc.Flags)
		if err != nil {
			return fmt.Errorf("locale %q: %w", loc.Name, err)
		}
		s.list = append(s.list, models.LocaleEntry{Name: loc.Name, Flags: flags})

		if _, dup := s.byName[loc.Name]; !dup {
			s.byName[loc.Name] = loc
		}
		// Several names may share one LCID (e.g. LOCALE_CUSTOM_UNSPECIFIED); the first entry wins.
		if loc.LCID != 0 {
			if first, dup := s.byLCID[loc.LCID]; dup {
				utils.Debug("Snapshot locale %q shares LCID 0x%04X with %q; its properties are not used",
					loc.Name, loc.LCID, first.Name)
			} else {
				s.byLCID[loc.LCID] = loc
			}
		}
	}
	return nil
}

func snapshotFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported snapshot format %q (use .yaml, .toml or .json)", filepath.Ext(path))
	}
}
