package cadastro

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events.
var (
	SignalProcessorCreated = capitan.NewSignal("cadastro.processor.created", "Processor instantiated")
	SignalFormatComplete   = capitan.NewSignal("cadastro.format.complete", "Input masks applied")
	SignalValidateComplete = capitan.NewSignal("cadastro.validate.complete", "Form validation finished")
	SignalReceiveStart     = capitan.NewSignal("cadastro.receive.start", "Receive operation beginning")
	SignalReceiveComplete  = capitan.NewSignal("cadastro.receive.complete", "Receive operation finished")
	SignalStoreStart       = capitan.NewSignal("cadastro.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("cadastro.store.complete", "Store operation finished")
	SignalSendStart        = capitan.NewSignal("cadastro.send.start", "Send operation beginning")
	SignalSendComplete     = capitan.NewSignal("cadastro.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyFormattedCount = capitan.NewIntKey("formatted_count")
	KeyInvalidCount   = capitan.NewIntKey("invalid_count")
	KeyHashedCount    = capitan.NewIntKey("hashed_count")
	KeyMaskedCount    = capitan.NewIntKey("masked_count")
	KeyRedactedCount  = capitan.NewIntKey("redacted_count")
)

func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitFormatComplete(ctx context.Context, typeName string, duration time.Duration, formatted int) {
	capitan.Emit(ctx, SignalFormatComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFormattedCount.Field(formatted),
	)
}

func emitValidateComplete(ctx context.Context, typeName string, duration time.Duration, invalid int) {
	capitan.Emit(ctx, SignalValidateComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyInvalidCount.Field(invalid),
	)
}

func emitReceiveStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete reports invalid fields as data; only codec failures
// are emitted as errors.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, duration time.Duration, invalid int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyInvalidCount.Field(invalid),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalReceiveComplete, fields...)
}

func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, hashed int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyHashedCount.Field(hashed),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalStoreComplete, fields...)
}

func emitSendStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, masked, redacted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
		KeyRedactedCount.Field(redacted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalSendComplete, fields...)
}
