/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

// Entity kinds stored in the general table. Product children share the
// product_{shop_uuid} partition and are discriminated by sort-key prefix
// and record_type; delivery options share delivery_{shop_uuid} the same way.
const (
	KindUser             Kind = "user"
	KindTgUser           Kind = "tg_user"
	KindToken            Kind = "token"
	KindShop             Kind = "shop"
	KindTemplate         Kind = "template"
	KindProductCategory  Kind = "product_category"
	KindProductBase      Kind = "product_base"
	KindProductVariant   Kind = "product_variant"
	KindProductExtraKit  Kind = "product_extra_kit"
	KindDeliveryPickup   Kind = "delivery_self_pickup"
	KindDeliveryManual   Kind = "delivery_manual"
	KindInfopagesRubric  Kind = "infopages_rubric"
	KindInfopagesPost    Kind = "infopages_post"
)

func init() {
	Register(KindUser, Template{
		Partition:  "user_",
		Sort:       "{uuid}",
		RecordType: "user_",
	})
	Register(KindTgUser, Template{
		Partition:  "tg_user",
		Sort:       "{tg_id}",
		RecordType: "tg_user",
	})
	// Token blacklist records live in a dedicated table with the same key
	// shape and carry no record_type.
	Register(KindToken, Template{
		Partition: "{jti}",
		Sort:      "token",
	})
	Register(KindShop, Template{
		Partition:  "shop",
		Sort:       "{shop_uuid}",
		RecordType: "shop",
	})
	Register(KindTemplate, Template{
		Partition:  "template",
		Sort:       "{uuid}",
		RecordType: "template",
	})
	Register(KindProductCategory, Template{
		Partition:  "product_category_{shop_uuid}",
		Sort:       "{uuid}",
		RecordType: "product_category",
	})
	Register(KindProductBase, Template{
		Partition:  "product_{shop_uuid}",
		Sort:       "{product_uuid}",
		RecordType: "product_base_info",
	})
	Register(KindProductVariant, Template{
		Partition:  "product_{shop_uuid}",
		Sort:       "{product_uuid}_variant_{variant_uuid}",
		RecordType: "product_variant",
	})
	Register(KindProductExtraKit, Template{
		Partition:  "product_{shop_uuid}",
		Sort:       "{product_uuid}_extra_kit_{extra_kit_uuid}",
		RecordType: "product_extra_kits",
	})
	Register(KindDeliveryPickup, Template{
		Partition:  "delivery_{shop_uuid}",
		Sort:       "self_pickup_{self_pickup_uuid}",
		RecordType: "delivery_self_pickup",
	})
	Register(KindDeliveryManual, Template{
		Partition:  "delivery_{shop_uuid}",
		Sort:       "manual_{delivery_manual_uuid}",
		RecordType: "delivery_manual",
	})
	Register(KindInfopagesRubric, Template{
		Partition:  "infopages_rubric_{shop_uuid}",
		Sort:       "{rubric_uuid}",
		RecordType: "infopages_rubric",
	})
	Register(KindInfopagesPost, Template{
		Partition:  "infopages_posts_{shop_uuid}",
		Sort:       "{post_uuid}",
		RecordType: "infopages_posts",
	})
}
