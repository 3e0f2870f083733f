// Package knowledge holds the static codec, container, filter, and
// extension tables the analyzer checks command options against. Tables
// are seeded once from embedded YAML and are read-only thereafter, so a
// *DB is safe to share across concurrent Analyze calls.
package knowledge

import (
	"embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"ffanalyze/internal/model"
)

//go:embed data/*.yaml
var seedFS embed.FS

// Codec is one entry of the codec catalog.
type Codec struct {
	Name    string
	Aliases []string
	Kind    model.StreamKind
}

// Container is one entry of the container catalog.
type Container struct {
	Name       string
	Extensions []string
	Codecs     map[string]bool
}

// Filter is one entry of the filter catalog.
type Filter struct {
	Name   string
	Kind   model.StreamKind
	Params []string
}

// DB is an immutable, loaded knowledge base. Extend it via Register*
// before sharing it across goroutines; a *DB must not be mutated once
// handed to concurrent callers.
type DB struct {
	codecsByName     map[string]*Codec
	containersByExt  map[string]*Container
	containersByName map[string]*Container
	filtersByName    map[string]*Filter
	extToKinds       map[string][]model.StreamKind
}

func newEmptyDB() *DB {
	return &DB{
		codecsByName:     make(map[string]*Codec),
		containersByExt:  make(map[string]*Container),
		containersByName: make(map[string]*Container),
		filtersByName:    make(map[string]*Filter),
		extToKinds:       make(map[string][]model.StreamKind),
	}
}

// RegisterCodec adds or replaces a codec entry, indexed by its canonical
// name and all aliases.
func (db *DB) RegisterCodec(c Codec) {
	entry := c
	db.codecsByName[entry.Name] = &entry
	for _, a := range entry.Aliases {
		db.codecsByName[a] = &entry
	}
}

// RegisterContainer adds or replaces a container entry.
func (db *DB) RegisterContainer(name string, extensions []string, codecs []string) {
	c := &Container{Name: name, Extensions: extensions, Codecs: make(map[string]bool)}
	for _, codec := range codecs {
		c.Codecs[codec] = true
	}
	db.containersByName[name] = c
	for _, ext := range extensions {
		db.containersByExt[ext] = c
	}
}

// RegisterFilter adds or replaces a filter entry.
func (db *DB) RegisterFilter(f Filter) {
	entry := f
	db.filtersByName[entry.Name] = &entry
}

// RegisterExtension associates a filename extension with a default
// stream-kind set.
func (db *DB) RegisterExtension(ext string, kinds []model.StreamKind) {
	db.extToKinds[ext] = kinds
}

// GetCodec resolves a codec name or alias, canonicalizing to the
// codec's "kind" via its canonical entry.
func (db *DB) GetCodec(nameOrAlias string) (*Codec, bool) {
	c, ok := db.codecsByName[strings.ToLower(nameOrAlias)]
	return c, ok
}

// GetContainerByExtension resolves a container by filename extension
// (without the leading dot).
func (db *DB) GetContainerByExtension(ext string) (*Container, bool) {
	c, ok := db.containersByExt[strings.ToLower(ext)]
	return c, ok
}

// GetContainerByName resolves a container by its explicit `-f` name.
func (db *DB) GetContainerByName(name string) (*Container, bool) {
	c, ok := db.containersByName[strings.ToLower(name)]
	return c, ok
}

// GetFilter resolves a filter by name.
func (db *DB) GetFilter(name string) (*Filter, bool) {
	f, ok := db.filtersByName[strings.ToLower(name)]
	return f, ok
}

// KindsForExtension returns the registered default stream-kind set for
// ext, or nil if the extension is unknown.
func (db *DB) KindsForExtension(ext string) []model.StreamKind {
	return db.extToKinds[strings.ToLower(ext)]
}

// IsCodecAllowedInContainer reports whether codec is in container's
// allowed set. The literal codec name "copy" is always allowed, since it
// passes an existing stream through unchanged.
func (db *DB) IsCodecAllowedInContainer(codecName string, c *Container) bool {
	if strings.EqualFold(codecName, "copy") {
		return true
	}
	codec, ok := db.GetCodec(codecName)
	if !ok {
		return false
	}
	return c.Codecs[codec.Name]
}

var (
	defaultOnce sync.Once
	defaultDB   *DB
)

// Default returns the process-wide knowledge base seeded from the
// embedded YAML data, built once and shared read-only thereafter.
func Default() *DB {
	defaultOnce.Do(func() {
		db, err := load()
		if err != nil {
			// The embedded seed data is compiled into the binary; a
			// failure here means the binary is broken, not that the
			// input is malformed. Fall back to an empty DB rather than
			// panic, so Analyze itself never fails per its contract.
			db = newEmptyDB()
		}
		defaultDB = db
	})
	return defaultDB
}

type yamlCodec struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Kind    string   `yaml:"kind"`
}

type yamlContainer struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	Codecs     []string `yaml:"codecs"`
}

type yamlFilter struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Params []string `yaml:"params"`
}

type yamlStreamRule struct {
	Extensions []string `yaml:"extensions"`
	Kinds      []string `yaml:"kinds"`
}

func parseKind(s string) model.StreamKind {
	switch s {
	case "video":
		return model.KindVideo
	case "audio":
		return model.KindAudio
	case "subtitle":
		return model.KindSubtitle
	default:
		return model.KindUnknown
	}
}

func load() (*DB, error) {
	db := newEmptyDB()

	codecsRaw, err := seedFS.ReadFile("data/codecs.yaml")
	if err != nil {
		return nil, err
	}
	var codecs []yamlCodec
	if err := yaml.Unmarshal(codecsRaw, &codecs); err != nil {
		return nil, err
	}
	for _, c := range codecs {
		db.RegisterCodec(Codec{Name: c.Name, Aliases: c.Aliases, Kind: parseKind(c.Kind)})
	}

	containersRaw, err := seedFS.ReadFile("data/containers.yaml")
	if err != nil {
		return nil, err
	}
	var containers []yamlContainer
	if err := yaml.Unmarshal(containersRaw, &containers); err != nil {
		return nil, err
	}
	for _, c := range containers {
		db.RegisterContainer(c.Name, c.Extensions, c.Codecs)
	}

	filtersRaw, err := seedFS.ReadFile("data/filters.yaml")
	if err != nil {
		return nil, err
	}
	var filters []yamlFilter
	if err := yaml.Unmarshal(filtersRaw, &filters); err != nil {
		return nil, err
	}
	for _, f := range filters {
		db.RegisterFilter(Filter{Name: f.Name, Kind: parseKind(f.Kind), Params: f.Params})
	}

	streamsRaw, err := seedFS.ReadFile("data/streams.yaml")
	if err != nil {
		return nil, err
	}
	var rules []yamlStreamRule
	if err := yaml.Unmarshal(streamsRaw, &rules); err != nil {
		return nil, err
	}
	for _, rule := range rules {
		var kinds []model.StreamKind
		for _, k := range rule.Kinds {
			kinds = append(kinds, parseKind(k))
		}
		for _, ext := range rule.Extensions {
			db.RegisterExtension(ext, kinds)
		}
	}

	return db, nil
}
