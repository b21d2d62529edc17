// Package cadastro formats and validates Brazilian registration-form input.
//
// The core is a set of pure, total functions. Masks re-punctuate whatever
// digits have been typed so far and can run on every keystroke:
//
//	cadastro.FormatCPF("1114447")       // "111.444.7"
//	cadastro.FormatPhone("11987654321") // "(11) 98765-4321"
//	cadastro.FormatCEP("01310100")      // "01310-100"
//
// Validators accept masked or raw input and return a boolean:
//
//	cadastro.ValidCPF("529.982.247-25") // true
//	cadastro.ValidPhone("1133334444")   // false, mobile numbers only
//
// # Form Processing
//
// A generic Processor applies the same rules to whole form types, driven by
// struct tags of the form {context}.{action}:"{capability}":
//
//	input.format:"cpf"       - Mask on Format and Receive
//	receive.validate:"cpf"   - Validate on Validate and Receive
//	store.hash:"hmac"        - Hash on Store
//	send.mask:"cpf"          - Mask personal data on Send
//	send.redact:"***"        - Replace with a literal on Send
//
// Basic usage:
//
//	proc, _ := cadastro.NewRegistrationProcessor(json.New(), pepper)
//
//	// Incoming form post: masks fields, then validates them
//	reg, err := proc.Receive(ctx, body)
//	var verr *cadastro.ValidationError
//	if errors.As(err, &verr) {
//	    // redisplay reg with verr.Fields
//	}
//
//	// Persist with the CPF fingerprinted
//	row, _ := proc.Store(ctx, reg)
//
//	// Respond with personal data masked
//	out, _ := proc.Send(ctx, reg)
//
// # Capabilities
//
//   - Field: FieldCPF, FieldPhone, FieldCEP, FieldEmail (format and validate)
//   - HashAlgo: HashHMAC (keyed, set with SetHasher), HashSHA256, HashSHA512,
//     HashArgon2, HashBcrypt
//   - MaskType: MaskCPF, MaskEmail, MaskPhone, MaskCEP, MaskName
//
// All builtins except HashHMAC are registered by NewProcessor; Set* methods
// add or replace them.
//
// # Codec Providers
//
// The json, yaml, msgpack and bson subpackages implement Codec.
package cadastro
