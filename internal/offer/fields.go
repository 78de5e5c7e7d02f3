package offer

import (
	"bytes"
	"encoding/json"
)

// CityRef is a city sent either as a bare name or as an object with a
// name member. Any other shape decodes as no city.
type CityRef string

func (c *CityRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = CityRef(name)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*c = CityRef(obj.Name)
		return nil
	}

	*c = ""
	return nil
}

// Amount is a money amount sent either as a JSON string or a number.
// Numbers keep their literal digits, so 120.50 stays "120.50". Any other
// shape decodes as an empty amount.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err == nil {
		*a = Amount(n.String())
		return nil
	}

	*a = ""
	return nil
}
