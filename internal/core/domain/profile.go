package domain

// Profile carries option defaults read from an optional profile file.
// Scalar fields are pointers so that absent keys leave flag values alone.
type Profile struct {
	Width     *int
	Height    *int
	Prefix    *string
	Upscale   *bool
	Mode      *string
	SVGEngine *string
	Only      []string
	Exclude   []string
	Match     []string
}

// Apply overlays the profile onto resolved options. List filters replace
// only when the options carry none of their own.
func (p Profile) Apply(opts *Options) {
	if p.Width != nil {
		opts.Config.FrameWidth = *p.Width
	}
	if p.Height != nil {
		opts.Config.FrameHeight = *p.Height
	}
	if p.Prefix != nil {
		opts.Config.Prefix = *p.Prefix
	}
	if p.Upscale != nil {
		opts.Config.AllowUpscale = *p.Upscale
	}
	if p.Mode != nil {
		opts.Mode = Mode(*p.Mode)
	}
	if p.SVGEngine != nil {
		opts.Config.SVGEngine = EngineSelector(*p.SVGEngine)
	}
	if len(opts.Filters.Only) == 0 {
		opts.Filters.Only = p.Only
	}
	if len(opts.Filters.Exclude) == 0 {
		opts.Filters.Exclude = p.Exclude
	}
	if len(opts.Filters.Patterns) == 0 {
		opts.Filters.Patterns = p.Match
	}
}
