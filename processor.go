package cadastro

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Compound tags, {context}.{action}.
const (
	tagFormat   = "input.format"
	tagValidate = "receive.validate"
	tagHash     = "store.hash"
	tagMask     = "send.mask"
	tagRedact   = "send.redact"
)

var contextTags = []string{tagFormat, tagValidate, tagHash, tagMask, tagRedact}

func init() {
	for _, tag := range contextTags {
		sentinel.Tag(tag)
	}
}

// Processor formats, validates and serializes a form type T according to
// its struct tags. Use Format on every keystroke, Validate on blur or
// submit, Receive for incoming payloads, and Store/Send for egress.
//
// Processors are safe for concurrent use. The Set* methods may be called at
// any time, but Check runs once, on the first operation, so register every
// capability the tags need before then.
type Processor[T Cloner[T]] struct {
	codec Codec

	mu         sync.RWMutex
	formatters map[Field]Formatter
	validators map[Field]Validator
	hashers    map[HashAlgo]Hasher
	maskers    map[MaskType]Masker

	checkOnce sync.Once
	checkErr  error

	plans *typeFieldPlans
}

// typeFieldPlans holds the per-action field plans for one type.
type typeFieldPlans struct {
	typeName string
	format   []fieldPlan
	validate []fieldPlan
	hash     []fieldPlan
	mask     []fieldPlan
	redact   []fieldPlan
}

// fieldPlan describes how to reach and transform a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.Field access path
	name       string // field path for errors, e.g. "Address.CEP"
	tagVal     string // tag value (e.g., "cpf", "sha256", "***")
	canonical  Field  // digit kind hashed by its digit sequence, empty otherwise
	ptrIndices []int  // positions in index where a pointer is dereferenced
	isBytes    bool   // []byte field
	isSlice    bool   // []string field
	isMap      bool   // map[K]string field
}

var planCache sync.Map // reflect.Type -> *typeFieldPlans

// NewProcessor creates a Processor for type T using codec for payloads.
//
// Builtin formatters, validators, hashers and maskers are registered. An
// unknown tag value fails with a ConfigError wrapping ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:      codec,
		formatters: builtinFormatters(),
		validators: builtinValidators(),
		hashers:    builtinHashers(),
		maskers:    builtinMaskers(),
		plans:      plans,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetFormatter registers a formatter for the given field kind.
// Returns the processor for chaining.
func (p *Processor[T]) SetFormatter(f Field, fm Formatter) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.formatters[f] = fm
	return p
}

// SetValidator registers a validator for the given field kind.
// Returns the processor for chaining.
func (p *Processor[T]) SetValidator(f Field, v Validator) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.validators[f] = v
	return p
}

// SetHasher registers a hasher for the given algorithm.
// Returns the processor for chaining.
func (p *Processor[T]) SetHasher(algo HashAlgo, h Hasher) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashers[algo] = h
	return p
}

// SetMasker registers a masker for the given type.
// Returns the processor for chaining.
func (p *Processor[T]) SetMasker(mt MaskType, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[mt] = m
	return p
}

// Check reports whether every capability named by T's tags is registered.
// It also runs automatically before the first operation; calling it at
// startup surfaces configuration errors early.
func (p *Processor[T]) Check() error {
	p.checkOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.checkErr = p.checkCapabilities()
	})
	return p.checkErr
}

func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typeFieldPlans), nil
	}
	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}
	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typeFieldPlans), nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{typeName: spec.TypeName}
	if err := plans.add(spec, nil, nil, ""); err != nil {
		return nil, err
	}
	return plans, nil
}

// add records plans for the fields of spec, descending into nested structs.
func (plans *typeFieldPlans) add(spec sentinel.Metadata, parentIndex, ptrIndices []int, prefix string) error {
	for _, field := range spec.Fields {
		index := append(append([]int{}, parentIndex...), field.Index...)
		name := field.Name
		if prefix != "" {
			name = prefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := plans.add(*nested, index, ptrIndices, name); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				ptrs := append(append([]int{}, ptrIndices...), len(index)-1)
				if err := plans.add(*nested, index, ptrs, name); err != nil {
					return err
				}
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String
		if !isString && !isBytes && !isSlice && !isMap {
			continue
		}

		base := fieldPlan{
			index:      index,
			name:       name,
			ptrIndices: ptrIndices,
			isBytes:    isBytes,
			isSlice:    isSlice,
			isMap:      isMap,
		}

		var formatKind Field
		if val, ok := field.Tags[tagFormat]; ok {
			if !IsValidField(Field(val)) {
				return newConfigError(ErrInvalidTag, val, name)
			}
			plan := base
			plan.tagVal = val
			plans.format = append(plans.format, plan)
			formatKind = Field(val)
		}

		if val, ok := field.Tags[tagValidate]; ok {
			if !IsValidField(Field(val)) {
				return newConfigError(ErrInvalidTag, val, name)
			}
			plan := base
			plan.tagVal = val
			plans.validate = append(plans.validate, plan)
		}

		if val, ok := field.Tags[tagHash]; ok {
			if !IsValidHashAlgo(HashAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, name)
			}
			plan := base
			plan.tagVal = val
			if _, digits := digitFields[formatKind]; digits {
				plan.canonical = formatKind
			}
			plans.hash = append(plans.hash, plan)
		}

		if val, ok := field.Tags[tagMask]; ok {
			if !IsValidMaskType(MaskType(val)) {
				return newConfigError(ErrInvalidTag, val, name)
			}
			plan := base
			plan.tagVal = val
			plans.mask = append(plans.mask, plan)
		}

		if val, ok := field.Tags[tagRedact]; ok {
			plan := base
			plan.tagVal = val
			plans.redact = append(plans.redact, plan)
		}
	}
	return nil
}

// scanNestedType returns metadata for a nested struct type, preferring
// sentinel's cache.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseContextTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseContextTags extracts context.action tags from a struct tag.
func parseContextTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range contextTags {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// checkCapabilities ensures every tagged capability is registered.
// Actions covered by an override interface are skipped.
func (p *Processor[T]) checkCapabilities() error {
	var zero T
	_, formattable := any(&zero).(Formattable)
	_, validatable := any(&zero).(Validatable)
	_, hashable := any(&zero).(Hashable)
	_, maskable := any(&zero).(Maskable)

	if !formattable {
		for _, plan := range p.plans.format {
			if _, ok := p.formatters[Field(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingFormatter, plan.tagVal, plan.name)
			}
		}
	}
	if !validatable {
		for _, plan := range p.plans.validate {
			if _, ok := p.validators[Field(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingValidator, plan.tagVal, plan.name)
			}
		}
	}
	if !hashable {
		for _, plan := range p.plans.hash {
			if _, ok := p.hashers[HashAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingHasher, plan.tagVal, plan.name)
			}
		}
	}
	if !maskable {
		for _, plan := range p.plans.mask {
			if _, ok := p.maskers[MaskType(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingMasker, plan.tagVal, plan.name)
			}
		}
	}
	return nil
}

// Format returns a copy of obj with every input.format field masked.
// Use on each keystroke; the result is safe to write back to the form.
func (p *Processor[T]) Format(ctx context.Context, obj *T) (*T, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	start := time.Now()
	clone := (*obj).Clone()

	p.mu.RLock()
	p.applyFormat(&clone)
	p.mu.RUnlock()

	emitFormatComplete(ctx, p.plans.typeName, time.Since(start), len(p.plans.format))
	return &clone, nil
}

// Validate checks every receive.validate field of obj as given. Empty
// values are skipped. It returns a *ValidationError listing each rejected
// field, or nil.
func (p *Processor[T]) Validate(ctx context.Context, obj *T) error {
	if err := p.Check(); err != nil {
		return err
	}
	if obj == nil {
		return nil
	}

	start := time.Now()

	p.mu.RLock()
	fields := p.applyValidate(obj)
	p.mu.RUnlock()

	emitValidateComplete(ctx, p.plans.typeName, time.Since(start), len(fields))
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Receive unmarshals data, masks input.format fields and validates
// receive.validate fields. When validation fails the formatted value is
// returned together with a *ValidationError so the form can be redisplayed.
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitReceiveStart(ctx, p.codec.ContentType(), p.plans.typeName)

	var retErr error
	var invalid int
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.plans.typeName,
			time.Since(start), invalid, retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	p.applyFormat(&obj)
	fields := p.applyValidate(&obj)
	invalid = len(fields)
	if invalid > 0 {
		return &obj, &ValidationError{Fields: fields}
	}
	return &obj, nil
}

// Store hashes store.hash fields on a copy of obj and marshals the result.
// Empty values are left empty.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.plans.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.plans.typeName,
			len(retData), time.Since(start), len(p.plans.hash), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if h, ok := any(&clone).(Hashable); ok {
		if err := h.Hash(p.hashers); err != nil {
			retErr = newTransformError(ErrHash, "hash", p.plans.typeName, err)
			return nil, retErr
		}
	} else if err := p.applyHash(&clone); err != nil {
		retErr = err
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Send masks and redacts fields on a copy of obj and marshals the result.
// Use for data leaving the system: API responses, notifications, logs.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitSendStart(ctx, p.codec.ContentType(), p.plans.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.plans.typeName,
			len(retData), time.Since(start),
			len(p.plans.mask), len(p.plans.redact), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if m, ok := any(&clone).(Maskable); ok {
		if err := m.Mask(p.maskers); err != nil {
			retErr = newTransformError(ErrMask, "mask", p.plans.typeName, err)
			return nil, retErr
		}
	} else {
		p.applyMask(&clone)
	}

	if r, ok := any(&clone).(Redactable); ok {
		if err := r.Redact(); err != nil {
			retErr = newTransformError(ErrMask, "redact", p.plans.typeName, err)
			return nil, retErr
		}
	} else {
		p.applyRedact(&clone)
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// applyFormat masks input.format fields in place. Callers hold p.mu.
func (p *Processor[T]) applyFormat(obj *T) {
	if f, ok := any(obj).(Formattable); ok {
		f.Format(p.formatters)
		return
	}

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.format {
		formatter := p.formatters[Field(plan.tagVal)]
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		_ = rewrite(field, plan, func(_, value string) (string, error) {
			return formatter.Format(value), nil
		})
	}
}

// applyValidate collects rejected receive.validate fields. Callers hold p.mu.
func (p *Processor[T]) applyValidate(obj *T) []*FieldError {
	if v, ok := any(obj).(Validatable); ok {
		return v.Validate(p.validators)
	}

	var fields []*FieldError
	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.validate {
		kind := Field(plan.tagVal)
		validator := p.validators[kind]
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		visit(field, plan, func(path, value string) {
			if value != "" && !validator.Valid(value) {
				fields = append(fields, newFieldError(path, kind, value))
			}
		})
	}
	return fields
}

// applyHash hashes store.hash fields in place. Callers hold p.mu.
func (p *Processor[T]) applyHash(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.hash {
		hasher := p.hashers[HashAlgo(plan.tagVal)]
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		err := rewrite(field, plan, func(path, value string) (string, error) {
			if value == "" {
				return value, nil
			}
			if plan.canonical != "" {
				value = Canonical(plan.canonical, value)
			}
			hashed, err := hasher.Hash([]byte(value))
			if err != nil {
				return "", newTransformError(ErrHash, "hash", path, err)
			}
			return hashed, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// applyMask masks send.mask fields in place. Callers hold p.mu.
func (p *Processor[T]) applyMask(obj *T) {
	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.mask {
		masker := p.maskers[MaskType(plan.tagVal)]
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		_ = rewrite(field, plan, func(_, value string) (string, error) {
			return masker.Mask(value), nil
		})
	}
}

// applyRedact replaces send.redact fields with their tag literal.
func (p *Processor[T]) applyRedact(obj *T) {
	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.redact {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		_ = rewrite(field, plan, func(_, _ string) (string, error) {
			return plan.tagVal, nil
		})
	}
}

// rewrite replaces every string held by field with fn's result. Slice and
// map elements are addressed as name[i] and name[key].
func rewrite(field reflect.Value, plan fieldPlan, fn func(path, value string) (string, error)) error {
	switch {
	case plan.isSlice:
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			out, err := fn(fmt.Sprintf("%s[%d]", plan.name, i), elem.String())
			if err != nil {
				return err
			}
			elem.SetString(out)
		}
	case plan.isMap:
		elemType := field.Type().Elem()
		iter := field.MapRange()
		for iter.Next() {
			k := iter.Key()
			out, err := fn(fmt.Sprintf("%s[%v]", plan.name, k.Interface()), iter.Value().String())
			if err != nil {
				return err
			}
			field.SetMapIndex(k, reflect.ValueOf(out).Convert(elemType))
		}
	case !field.CanSet():
		return nil
	case plan.isBytes:
		out, err := fn(plan.name, string(field.Bytes()))
		if err != nil {
			return err
		}
		field.SetBytes([]byte(out))
	default:
		out, err := fn(plan.name, field.String())
		if err != nil {
			return err
		}
		field.SetString(out)
	}
	return nil
}

// visit calls fn for every string held by field without modifying it.
func visit(field reflect.Value, plan fieldPlan, fn func(path, value string)) {
	switch {
	case plan.isSlice:
		for i := 0; i < field.Len(); i++ {
			fn(fmt.Sprintf("%s[%d]", plan.name, i), field.Index(i).String())
		}
	case plan.isMap:
		iter := field.MapRange()
		for iter.Next() {
			fn(fmt.Sprintf("%s[%v]", plan.name, iter.Key().Interface()), iter.Value().String())
		}
	case plan.isBytes:
		fn(plan.name, string(field.Bytes()))
	default:
		fn(plan.name, field.String())
	}
}

// getField navigates a field path, dereferencing pointers as needed.
// It returns false when a pointer on the path is nil.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)
		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}
	return current, true
}
