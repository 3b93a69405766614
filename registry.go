package swf

import "github.com/puzpuzpuz/xsync/v4"

// Factory decodes one object of its category from the stream. Factories are
// installed once and treated as immutable; a registry copy shares the
// factory handles but not the slot table.
type Factory[T any] func(r *Reader, ctx *Context) (T, error)

// DecoderRegistry is a table of swappable factories, one per object category.
// It decouples "what category comes next in the stream" from "which concrete
// implementation decodes it": installing a different factory changes how a
// category is decoded without touching the callers.
//
// The registry has value semantics: assigning or copying one yields an
// independent slot table, so mutating a slot on one registry never affects
// another. An unset slot is nil.
type DecoderRegistry struct {
	filter      Factory[Filter]
	fillStyle   Factory[FillStyle]
	morphFill   Factory[FillStyle]
	shapeRecord Factory[ShapeRecord]
	action      Factory[Action]
	movieTag    Factory[MovieTag]
}

// Copy returns an independent registry with the same factory handles.
func (d DecoderRegistry) Copy() DecoderRegistry { return d }

// FilterDecoder returns the factory for the filter category.
func (d DecoderRegistry) FilterDecoder() Factory[Filter] { return d.filter }

// SetFilterDecoder installs the factory for the filter category.
func (d *DecoderRegistry) SetFilterDecoder(f Factory[Filter]) { d.filter = f }

// FillStyleDecoder returns the factory for the fill style category.
func (d DecoderRegistry) FillStyleDecoder() Factory[FillStyle] { return d.fillStyle }

// SetFillStyleDecoder installs the factory for the fill style category.
func (d *DecoderRegistry) SetFillStyleDecoder(f Factory[FillStyle]) { d.fillStyle = f }

// MorphFillStyleDecoder returns the factory for the morph fill style category.
func (d DecoderRegistry) MorphFillStyleDecoder() Factory[FillStyle] { return d.morphFill }

// SetMorphFillStyleDecoder installs the factory for the morph fill style category.
func (d *DecoderRegistry) SetMorphFillStyleDecoder(f Factory[FillStyle]) { d.morphFill = f }

// ShapeRecordDecoder returns the factory for the shape record category.
func (d DecoderRegistry) ShapeRecordDecoder() Factory[ShapeRecord] { return d.shapeRecord }

// SetShapeRecordDecoder installs the factory for the shape record category.
func (d *DecoderRegistry) SetShapeRecordDecoder(f Factory[ShapeRecord]) { d.shapeRecord = f }

// ActionDecoder returns the factory for the action category.
func (d DecoderRegistry) ActionDecoder() Factory[Action] { return d.action }

// SetActionDecoder installs the factory for the action category.
func (d *DecoderRegistry) SetActionDecoder(f Factory[Action]) { d.action = f }

// MovieTagDecoder returns the factory for the movie tag category.
func (d DecoderRegistry) MovieTagDecoder() Factory[MovieTag] { return d.movieTag }

// SetMovieTagDecoder installs the factory for the movie tag category.
func (d *DecoderRegistry) SetMovieTagDecoder(f Factory[MovieTag]) { d.movieTag = f }

// The process-wide default registry is built once at package initialization
// with one factory per slot and is only reachable through Default and
// SetDefault, which copy on the way in and out. The guard is reader biased:
// Default is called far more often than SetDefault.
var (
	defaultMu       = xsync.NewRBMutex()
	defaultRegistry = DecoderRegistry{
		filter:      DecodeFilter,
		fillStyle:   DecodeFillStyle,
		morphFill:   DecodeMorphFillStyle,
		shapeRecord: DecodeShapeRecord,
		action:      DecodeAction,
		movieTag:    DecodeTag,
	}
)

// Default returns an independent copy of the process-wide default registry.
// The copy may be customized freely without affecting the default or any
// other caller's copy; it will not observe later SetDefault calls.
func Default() DecoderRegistry {
	t := defaultMu.RLock()
	defer defaultMu.RUnlock(t)
	return defaultRegistry
}

// SetDefault replaces the process-wide default with an independent copy of d,
// so later mutation of the caller's registry cannot change the stored
// default. Copies handed out by earlier Default calls are unaffected.
func SetDefault(d DecoderRegistry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = d
}

// fillStyleFactory resolves the fill style factory for a decode pass, falling
// back to the package default when no registry is attached or the slot is
// unset.
func (ctx *Context) fillStyleFactory() Factory[FillStyle] {
	if ctx.Registry != nil && ctx.Registry.fillStyle != nil {
		return ctx.Registry.fillStyle
	}
	return DecodeFillStyle
}

// shapeRecordFactory resolves the shape record factory for a decode pass.
func (ctx *Context) shapeRecordFactory() Factory[ShapeRecord] {
	if ctx.Registry != nil && ctx.Registry.shapeRecord != nil {
		return ctx.Registry.shapeRecord
	}
	return DecodeShapeRecord
}
