package object

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stixcore/internal/testutil"
	"github.com/roach88/stixcore/schema"
)

const (
	indicatorID    = "indicator--01234567-89ab-cdef-0123-456789abcdef"
	malwareID      = "malware--fedcba98-7654-3210-fedc-ba9876543210"
	relationshipID = "relationship--00000000-1111-2222-3333-444444444444"
)

var fakeTime = time.Date(2017, 1, 1, 12, 34, 56, 0, time.UTC)

func relationshipSchema() *schema.Type {
	return &schema.Type{
		Name:  "relationship",
		Label: "Relationship",
		Properties: []schema.Property{
			{Name: "type", Kind: schema.KindString, Fixed: "relationship"},
			{Name: "id", Kind: schema.KindIdentifier, Prefix: "relationship--", Default: schema.DefaultIdentifier},
			{Name: "created", Kind: schema.KindTimestamp, Default: schema.DefaultNow},
			{Name: "modified", Kind: schema.KindTimestamp, Default: schema.DefaultNow},
			{Name: "relationship_type", Kind: schema.KindString, Required: true},
			{Name: "source_ref", Kind: schema.KindReference, Required: true},
			{Name: "target_ref", Kind: schema.KindReference, Required: true},
		},
		Positional: []string{"source_ref", "relationship_type", "target_ref"},
	}
}

func relationshipKwargs() map[string]any {
	return map[string]any{
		"relationship_type": "indicates",
		"source_ref":        indicatorID,
		"target_ref":        malwareID,
	}
}

// frozen returns options pinning the clock and id generator so defaults
// are reproducible.
func frozen() []Option {
	return []Option{
		WithClock(testutil.NewFrozenClock(fakeTime)),
		WithIDGenerator(testutil.SequentialIDs()),
	}
}

func TestConstructAllRequiredProperties(t *testing.T) {
	now := time.Date(2016, 4, 6, 20, 6, 37, 0, time.UTC)

	rel, err := Construct(relationshipSchema(), nil, map[string]any{
		"type":              "relationship",
		"id":                relationshipID,
		"created":           now,
		"modified":          now,
		"relationship_type": "indicates",
		"source_ref":        indicatorID,
		"target_ref":        malwareID,
	})
	require.NoError(t, err)

	assert.Equal(t, "relationship", rel.TypeName())
	assert.Equal(t, relationshipID, rel.ID())

	created, ok := rel.GetTime("created")
	require.True(t, ok)
	assert.True(t, now.Equal(created))
}

func TestConstructAutogeneratedProperties(t *testing.T) {
	rel, err := Construct(relationshipSchema(), nil, relationshipKwargs(), frozen()...)
	require.NoError(t, err)

	typeName, _ := rel.GetString("type")
	assert.Equal(t, "relationship", typeName, "fixed value fills in when absent")
	assert.Equal(t, "relationship--00000000-0000-0000-0000-000000000001", rel.ID())

	created, ok := rel.GetTime("created")
	require.True(t, ok)
	assert.True(t, fakeTime.Equal(created))

	modified, ok := rel.GetTime("modified")
	require.True(t, ok)
	assert.True(t, fakeTime.Equal(modified))

	relType, _ := rel.GetString("relationship_type")
	assert.Equal(t, "indicates", relType)
	srcRef, _ := rel.GetString("source_ref")
	assert.Equal(t, indicatorID, srcRef)
	tgtRef, _ := rel.GetString("target_ref")
	assert.Equal(t, malwareID, tgtRef)
}

func TestConstructDefaultsDeterministicWithFrozenClock(t *testing.T) {
	a, err := Construct(relationshipSchema(), nil, relationshipKwargs(), frozen()...)
	require.NoError(t, err)
	b, err := Construct(relationshipSchema(), nil, relationshipKwargs(), frozen()...)
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b), "identical inputs and frozen seams yield equal objects")
}

func TestConstructTypeMustEqualFixedValue(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["type"] = "xxx"

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Relationship", invalid.Type)
	assert.Equal(t, "type", invalid.Property)
	assert.Equal(t, "must equal 'relationship'.", invalid.Reason)
	assert.Equal(t, "Invalid value for Relationship 'type': must equal 'relationship'.", err.Error())
}

func TestConstructIDMustStartWithTypePrefix(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["id"] = "my-prefix--"

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Relationship", invalid.Type)
	assert.Equal(t, "id", invalid.Property)
	assert.Equal(t, "must start with 'relationship--'.", invalid.Reason)
	assert.Equal(t, "Invalid value for Relationship 'id': must start with 'relationship--'.", err.Error())
}

func TestConstructReportsAllMissingProperties(t *testing.T) {
	_, err := Construct(relationshipSchema(), nil, nil, frozen()...)

	var missing *MissingPropertiesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Relationship", missing.Type)
	assert.Equal(t, []string{"relationship_type", "source_ref", "target_ref"}, missing.Properties,
		"all missing names in schema order, not just the first")
}

func TestConstructReportsSomeMissingProperties(t *testing.T) {
	_, err := Construct(relationshipSchema(), nil, map[string]any{
		"relationship_type": "indicates",
	}, frozen()...)

	var missing *MissingPropertiesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"source_ref", "target_ref"}, missing.Properties)
}

func TestConstructReportsSingleMissingProperty(t *testing.T) {
	_, err := Construct(relationshipSchema(), nil, map[string]any{
		"relationship_type": "indicates",
		"source_ref":        indicatorID,
	}, frozen()...)

	var missing *MissingPropertiesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"target_ref"}, missing.Properties)
	assert.Equal(t, "No values for required properties for Relationship: (target_ref).", err.Error())
}

func TestConstructRejectsExtraProperties(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["my_custom_property"] = "foo"

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var extra *ExtraPropertiesError
	require.ErrorAs(t, err, &extra)
	assert.Equal(t, "Relationship", extra.Type)
	assert.Equal(t, []string{"my_custom_property"}, extra.Properties)
	assert.Equal(t, "Unexpected properties for Relationship: (my_custom_property).", err.Error())
}

func TestConstructRejectsAllExtraProperties(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["zz_custom"] = 1
	kwargs["aa_custom"] = 2

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var extra *ExtraPropertiesError
	require.ErrorAs(t, err, &extra)
	assert.Equal(t, []string{"aa_custom", "zz_custom"}, extra.Properties,
		"every undeclared name is reported, deterministically ordered")
}

func TestConstructCoercesObjectToReference(t *testing.T) {
	indTyp, indProps := indicatorFixture(t)
	indicator := mustConstruct(t, indTyp, indProps)
	malTyp, malProps := malwareFixture(t)
	malware := mustConstruct(t, malTyp, malProps)

	rel, err := Construct(relationshipSchema(), nil, map[string]any{
		"relationship_type": "indicates",
		"source_ref":        indicator,
		"target_ref":        malware,
	}, frozen()...)
	require.NoError(t, err)

	srcRef, _ := rel.GetString("source_ref")
	assert.Equal(t, indicator.ID(), srcRef)
	tgtRef, _ := rel.GetString("target_ref")
	assert.Equal(t, malware.ID(), tgtRef)
}

func TestConstructPositionalEquivalentToKeyword(t *testing.T) {
	byKeyword, err := Construct(relationshipSchema(), nil, map[string]any{
		"source_ref":        indicatorID,
		"relationship_type": "indicates",
		"target_ref":        malwareID,
	}, frozen()...)
	require.NoError(t, err)

	byPosition, err := Construct(relationshipSchema(),
		[]any{indicatorID, "indicates", malwareID}, nil, frozen()...)
	require.NoError(t, err)

	assert.True(t, byKeyword.Equal(byPosition))
}

func TestConstructPositionalAndKeywordConflict(t *testing.T) {
	_, err := Construct(relationshipSchema(),
		[]any{indicatorID, "indicates", malwareID},
		map[string]any{"relationship_type": "derived-from"},
		frozen()...)

	var multiple *MultipleValuesError
	require.ErrorAs(t, err, &multiple)
	assert.Equal(t, "Relationship", multiple.Type)
	assert.Equal(t, "relationship_type", multiple.Property)
}

func TestConstructTooManyPositionalArguments(t *testing.T) {
	_, err := Construct(relationshipSchema(),
		[]any{indicatorID, "indicates", malwareID, "excess"}, nil, frozen()...)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "too many positional arguments")
}

func TestConstructMissingReportedBeforeInvalid(t *testing.T) {
	// Required properties absent and an invalid value present: the
	// exhaustive missing pass runs first.
	_, err := Construct(relationshipSchema(), nil, map[string]any{
		"id": "wrong-prefix--x",
	}, frozen()...)

	var missing *MissingPropertiesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"relationship_type", "source_ref", "target_ref"}, missing.Properties)
}

func TestConstructFailsFastOnFirstInvalidValue(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["created"] = "not a timestamp"
	kwargs["modified"] = "also not a timestamp"

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "created", invalid.Property,
		"first failure in schema declaration order wins")
}

func TestConstructTimestampFromString(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["created"] = "2016-04-06T20:06:37Z"
	kwargs["modified"] = "2016-04-06T20:06:37.500Z"

	rel, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)
	require.NoError(t, err)

	created, _ := rel.GetTime("created")
	assert.True(t, time.Date(2016, 4, 6, 20, 6, 37, 0, time.UTC).Equal(created))
	modified, _ := rel.GetTime("modified")
	assert.True(t, time.Date(2016, 4, 6, 20, 6, 37, 500_000_000, time.UTC).Equal(modified))
}

func TestConstructInvalidReferenceValue(t *testing.T) {
	kwargs := relationshipKwargs()
	kwargs["source_ref"] = 42

	_, err := Construct(relationshipSchema(), nil, kwargs, frozen()...)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "source_ref", invalid.Property)
	assert.Equal(t, "must be an identifier string or a constructed object.", invalid.Reason)
}

func TestConstructErrorsMatchableByKind(t *testing.T) {
	_, err := Construct(relationshipSchema(), nil, nil, frozen()...)
	require.Error(t, err)

	var missing *MissingPropertiesError
	assert.True(t, errors.As(err, &missing))
	var invalid *InvalidValueError
	assert.False(t, errors.As(err, &invalid))
}

// indicatorFixture builds a minimal indicator schema plus input for
// reference-coercion tests.
func indicatorFixture(t *testing.T) (*schema.Type, map[string]any) {
	t.Helper()
	typ := &schema.Type{
		Name:  "indicator",
		Label: "Indicator",
		Properties: []schema.Property{
			{Name: "type", Kind: schema.KindString, Fixed: "indicator"},
			{Name: "id", Kind: schema.KindIdentifier, Prefix: "indicator--", Default: schema.DefaultIdentifier},
			{Name: "labels", Kind: schema.KindStringList, Required: true},
			{Name: "pattern", Kind: schema.KindString, Required: true},
		},
	}
	return typ, map[string]any{
		"labels":  []string{"malicious-activity"},
		"pattern": "[file:hashes.MD5 = 'd41d8cd98f00b204e9800998ecf8427e']",
	}
}

// malwareFixture builds a minimal malware schema plus input.
func malwareFixture(t *testing.T) (*schema.Type, map[string]any) {
	t.Helper()
	typ := &schema.Type{
		Name:  "malware",
		Label: "Malware",
		Properties: []schema.Property{
			{Name: "type", Kind: schema.KindString, Fixed: "malware"},
			{Name: "id", Kind: schema.KindIdentifier, Prefix: "malware--", Default: schema.DefaultIdentifier},
			{Name: "labels", Kind: schema.KindStringList, Required: true},
			{Name: "name", Kind: schema.KindString, Required: true},
		},
	}
	return typ, map[string]any{
		"labels": []string{"ransomware"},
		"name":   "Cryptolocker",
	}
}

func mustConstruct(t *testing.T, typ *schema.Type, props map[string]any) *Object {
	t.Helper()
	o, err := Construct(typ, nil, props, frozen()...)
	require.NoError(t, err)
	return o
}
