package systems

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
}

const (
	settingsKey = "settings"
	scoresKey   = "scores"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dino",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem(settingsKey, &s) {
		return nil
	}
	return &s
}

// SaveCurrentSettings writes the live volumes and window mode.
func SaveCurrentSettings() {
	_ = saveItem(settingsKey, &SavedSettings{
		MusicVolume: GetMusicVolume(),
		SFXVolume:   GetSFXVolume(),
		Fullscreen:  ebiten.IsFullscreen(),
	})
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadHighScores returns the saved table, best first.
func LoadHighScores() []components.HighScore {
	var scores []components.HighScore
	if !loadItem(scoresKey, &scores) {
		return nil
	}
	sortScores(scores)
	if len(scores) > cfg.Menu.HighScores {
		scores = scores[:cfg.Menu.HighScores]
	}
	return scores
}

// RecordHighScore inserts a finished run into the saved table and returns
// its rank, or -1 when it did not place.
func RecordHighScore(s components.HighScore) int {
	scores, rank := InsertHighScore(LoadHighScores(), s, cfg.Menu.HighScores)
	if rank >= 0 {
		_ = saveItem(scoresKey, scores)
	}
	return rank
}

// InsertHighScore places s into a best-first table capped at limit. Ties
// keep the older entry ahead. Zero scores never place.
func InsertHighScore(scores []components.HighScore, s components.HighScore, limit int) ([]components.HighScore, int) {
	if s.Score <= 0 || limit <= 0 {
		return scores, -1
	}
	rank := len(scores)
	for i, hs := range scores {
		if s.Score > hs.Score {
			rank = i
			break
		}
	}
	if rank >= limit {
		return scores, -1
	}
	out := make([]components.HighScore, 0, len(scores)+1)
	out = append(out, scores[:rank]...)
	out = append(out, s)
	out = append(out, scores[rank:]...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, rank
}

func sortScores(scores []components.HighScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}
