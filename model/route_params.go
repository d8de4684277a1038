package model

import (
	"github.com/boolean-maybe/kiss/asset"
)

// Route params are passed to Show/Switch alongside a route as an untyped map,
// so the navigation engine stays independent of screen payloads.

const (
	paramAssetID = "assetID"
	paramDraft   = "draftAsset"
)

// AssetParams carries the payload for asset details/edit screens
type AssetParams struct {
	AssetID string
	Draft   *asset.Asset // unsaved edits to restore into the edit form
}

// EncodeAssetParams converts asset params into a params map.
// Returns nil when there is nothing to encode.
func EncodeAssetParams(params AssetParams) map[string]interface{} {
	assetID := params.AssetID
	if assetID == "" && params.Draft != nil {
		assetID = params.Draft.ID
	}
	if assetID == "" {
		return nil
	}

	encoded := map[string]interface{}{
		paramAssetID: asset.NormalizeID(assetID),
	}
	if params.Draft != nil {
		encoded[paramDraft] = params.Draft
	}
	return encoded
}

// DecodeAssetParams reads asset params from a params map.
// Missing or mistyped values decode to the zero value.
func DecodeAssetParams(params map[string]interface{}) AssetParams {
	var decoded AssetParams
	if params == nil {
		return decoded
	}
	if id, ok := params[paramAssetID].(string); ok {
		decoded.AssetID = id
	}
	if draft, ok := params[paramDraft].(*asset.Asset); ok && draft != nil {
		decoded.Draft = draft
		if decoded.AssetID == "" {
			decoded.AssetID = draft.ID
		}
	}
	return decoded
}

// AssetIDFor resolves the asset a route refers to: the route payload wins over params
func AssetIDFor(r Route, params map[string]interface{}) string {
	if r.Arg != "" {
		return asset.NormalizeID(r.Arg)
	}
	return DecodeAssetParams(params).AssetID
}
