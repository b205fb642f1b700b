package gsmarena

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupsMarshalOrder(t *testing.T) {
	var groups PriceGroups
	groups.Set("Zimbabwe", []PriceOffer{{Price: "$ 1"}})
	groups.Set("Albania", nil)
	groups.Set("Mexico", []PriceOffer{{Price: "$ 3", BuyUrl: "https://shop"}})
	groups.Set("Zimbabwe", []PriceOffer{{Price: "$ 2"}})

	encoded, err := json.Marshal(groups)
	require.NoError(t, err)
	require.Equal(
		t,
		`{"Zimbabwe":[{"shop_image":"","price":"$ 2","buy_url":""}],`+
			`"Albania":[],`+
			`"Mexico":[{"shop_image":"","price":"$ 3","buy_url":"https://shop"}]}`,
		string(encoded),
	)
}

func TestGroupsMarshalEmpty(t *testing.T) {
	var groups RelatedGroups
	encoded, err := json.Marshal(struct {
		Groups RelatedGroups `json:"groups"`
	}{Groups: groups})
	require.NoError(t, err)
	require.Equal(t, `{"groups":{}}`, string(encoded))
}

func TestGroupsUnmarshal(t *testing.T) {
	var groups RelatedGroups
	err := json.Unmarshal([]byte(`{
		"Related Devices": [{"device_name": "A", "device_image": "", "key": "a-1"}],
		"Popular from A": []
	}`), &groups)
	require.NoError(t, err)
	require.Equal(t, []string{"Related Devices", "Popular from A"}, groups.Labels())

	stubs, ok := groups.Get("Related Devices")
	require.True(t, ok)
	require.Equal(t, []DeviceStub{{DeviceName: "A", Key: "a-1"}}, stubs)

	require.NoError(t, json.Unmarshal([]byte(`null`), &groups))
	require.Empty(t, groups)

	require.Error(t, json.Unmarshal([]byte(`[1, 2]`), &groups))
	require.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &groups))
}
