// Package normalisers converts raw collection items into canonical
// activity feed items. One normaliser exists per source collection:
// blog posts, community profiles and products.
//
// Normalisers are pure functions. They perform no I/O, never fail, and
// resolve missing fields through fixed fallback chains. The post
// normaliser is the only one that can reject an item (unpublished or
// draft posts); profiles and products always produce an item.
package normalisers
