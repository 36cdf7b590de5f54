package filterquery

import (
	"fmt"
	"net/url"

	"github.com/go-viper/mapstructure/v2"
)

// BindValues decodes query-string style values onto dst, a pointer to a
// generated Filters struct, matching keys against `form` struct tags. Keys
// with one value bind to scalar or list members alike; repeated keys bind to
// list members. Values are parsed weakly, and types implementing
// encoding.TextUnmarshaler (uuid.UUID among them) parse themselves. Unknown
// keys are ignored.
func BindValues(values url.Values, dst any) error {
	input := make(map[string]any, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			input[key] = vs[0]
		default:
			input[key] = vs
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "form",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to build filter decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to bind filter values: %w", err)
	}
	return nil
}
