package config

type Config struct {
	InputPath    string
	ProjectPath  string
	OutputVideo  string
	Width        int
	Height       int
	FPS          int
	Workers      int
	AudioPath    string
	Preset       string
	VideoEncoder string
	Quality      int
	ShowStats    bool
	BuildVersion string
}

type EncodeParams struct {
	Width, Height int
	FPS           int
	AudioPath     string
	VideoEncoder  string
	Quality       int
	OutputPath    string
}
