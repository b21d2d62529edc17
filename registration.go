package cadastro

// Registration is the sign-up form of the donation page.
//
// CPF, phone and CEP are masked as typed and validated on submit. Email is
// trimmed and shape-checked. On Store the CPF becomes a keyed HMAC-SHA256
// fingerprint of its eleven digits; on Send every personal field is masked.
type Registration struct {
	Name     string `json:"nome" yaml:"nome" bson:"nome" msgpack:"nome" xml:"nome" send.mask:"name"`
	CPF      string `json:"cpf" yaml:"cpf" bson:"cpf" msgpack:"cpf" xml:"cpf" input.format:"cpf" receive.validate:"cpf" store.hash:"hmac" send.mask:"cpf"`
	Email    string `json:"email" yaml:"email" bson:"email" msgpack:"email" xml:"email" input.format:"email" receive.validate:"email" send.mask:"email"`
	Phone    string `json:"telefone" yaml:"telefone" bson:"telefone" msgpack:"telefone" xml:"telefone" input.format:"phone" receive.validate:"phone" send.mask:"phone"`
	CEP      string `json:"cep" yaml:"cep" bson:"cep" msgpack:"cep" xml:"cep" input.format:"cep" receive.validate:"cep" send.mask:"cep"`
	Campaign string `json:"campanha,omitempty" yaml:"campanha,omitempty" bson:"campanha,omitempty" msgpack:"campanha,omitempty" xml:"campanha,omitempty"`
}

// Clone implements Cloner[Registration].
func (r Registration) Clone() Registration { return r }

// NewRegistrationProcessor returns the shared Registration processor for
// codec with its CPF fingerprint keyed by pepper. The pepper must hold at
// least MinHMACKeyLen bytes. Callers sharing a codec share the processor, so
// they must agree on the pepper.
func NewRegistrationProcessor(codec Codec, pepper []byte) (*Processor[Registration], error) {
	if len(pepper) < MinHMACKeyLen {
		return nil, newConfigError(ErrInvalidKey, string(HashHMAC), "CPF")
	}
	p, err := Use[Registration](codec)
	if err != nil {
		return nil, err
	}
	return p.SetHasher(HashHMAC, HMACHasher(pepper)), nil
}
