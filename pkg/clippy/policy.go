package clippy

import (
	"github.com/leapstack-labs/clippygen/pkg/catalog"
)

// =============================================================================
// Profile
// =============================================================================

// Profile selects which policy variant to generate. Published crates keep
// cargo_common_metadata enabled; personal projects allow it.
type Profile int

// Profiles.
const (
	ProfilePublish Profile = iota
	ProfilePersonal
)

var profileNames = [...]string{
	ProfilePublish:  "publish",
	ProfilePersonal: "personal",
}

// String returns the canonical name of the profile.
func (p Profile) String() string {
	if int(p) < 0 || int(p) >= len(profileNames) {
		return "unknown"
	}
	return profileNames[p]
}

// ParseProfile converts a string to a Profile value.
// Returns the profile and true if valid, or ProfilePublish and false if invalid.
func ParseProfile(s string) (Profile, bool) {
	for i, name := range profileNames {
		if s == name {
			return Profile(i), true
		}
	}
	return ProfilePublish, false
}

// AllProfiles returns every known profile.
func AllProfiles() []Profile {
	return []Profile{ProfilePublish, ProfilePersonal}
}

// =============================================================================
// Policy
// =============================================================================

// The policy is program data, not configuration: fixed allow lists per
// group, plus an exhaustive treatment of the restriction group. Every id
// listed here is validated against the fetched catalog on each run, so an
// upstream rename or removal fails loudly.

// Override is a policy statement forcing the listed lints of one group to
// level allow.
type Override struct {
	Group catalog.Group
	Lints []string
}

var pedanticAllows = []string{
	"too_many_lines",
	"must_use_candidate",
	"map_unwrap_or",
	"missing_errors_doc",
	"if_not_else",
}

var nurseryAllows = []string{
	"missing_const_for_fn",
	"option_if_let_else",
	"redundant_pub_crate",
}

var complexityAllows = []string{
	"too_many_arguments",
}

var styleAllows = []string{
	"new_without_default",
	"redundant_closure",
}

var cargoAllows = []string{
	"multiple_crate_versions",
}

// cargo_common_metadata only matters when publishing to a registry.
var cargoPersonalAllows = []string{
	"cargo_common_metadata",
}

// restrictionWarns is the exception half of the exhaustive restriction
// split: these warn, every other restriction lint is explicitly allowed.
var restrictionWarns = []string{
	"allow_attributes",
	"allow_attributes_without_reason",
	"arithmetic_side_effects",
	"as_conversions",
	"assertions_on_result_states",
	"cfg_not_test",
	"clone_on_ref_ptr",
	"create_dir",
	"dbg_macro",
	"decimal_literal_representation",
	"default_numeric_fallback",
	"deref_by_slicing",
	"disallowed_script_idents",
	"else_if_without_else",
	"empty_drop",
	"empty_enum_variants_with_brackets",
	"empty_structs_with_brackets",
	"exit",
	"filetype_is_file",
	"float_arithmetic",
	"float_cmp_const",
	"fn_to_numeric_cast_any",
	"format_push_string",
	"get_unwrap",
	"indexing_slicing",
	"infinite_loop",
	"inline_asm_x86_att_syntax",
	"inline_asm_x86_intel_syntax",
	"integer_division",
	"iter_over_hash_type",
	"large_include_file",
	"let_underscore_must_use",
	"let_underscore_untyped",
	"little_endian_bytes",
	"lossy_float_literal",
	"map_err_ignore",
	"mem_forget",
	"missing_assert_message",
	"missing_asserts_for_indexing",
	"mixed_read_write_in_expression",
	"modulo_arithmetic",
	"multiple_inherent_impl",
	"multiple_unsafe_ops_per_block",
	"mutex_atomic",
	"panic",
	"partial_pub_fields",
	"pattern_type_mismatch",
	"print_stderr",
	"print_stdout",
	"pub_without_shorthand",
	"rc_buffer",
	"rc_mutex",
	"redundant_type_annotations",
	"renamed_function_params",
	"rest_pat_in_fully_bound_structs",
	"same_name_method",
	"self_named_module_files",
	"semicolon_inside_block",
	"str_to_string",
	"string_add",
	"string_lit_chars_any",
	"string_slice",
	"string_to_string",
	"suspicious_xor_used_as_pow",
	"tests_outside_test_module",
	"todo",
	"try_err",
	"undocumented_unsafe_blocks",
	"unimplemented",
	"unnecessary_safety_comment",
	"unnecessary_safety_doc",
	"unnecessary_self_imports",
	"unneeded_field_pattern",
	"unseparated_literal_suffix",
	"unused_result_ok",
	"unwrap_used",
	"use_debug",
	"verbose_file_reads",
}

// EnabledGroups returns the group-wide settings emitted first: correctness
// denies, everything else (except restriction and deprecated) warns, all at
// priority -1 so per-lint settings take precedence.
func EnabledGroups() []Setting {
	prio := ExplicitPriority(-1)
	return []Setting{
		denyGroup(catalog.GroupCorrectness, prio),
		warnGroup(catalog.GroupSuspicious, prio),
		warnGroup(catalog.GroupStyle, prio),
		warnGroup(catalog.GroupComplexity, prio),
		warnGroup(catalog.GroupPerf, prio),
		warnGroup(catalog.GroupCargo, prio),
		warnGroup(catalog.GroupPedantic, prio),
		warnGroup(catalog.GroupNursery, prio),
	}
}

// Overrides returns the per-group allow lists for the given profile, in
// emission order.
func Overrides(profile Profile) []Override {
	cargo := cargoAllows
	if profile == ProfilePersonal {
		cargo = append(append([]string{}, cargoAllows...), cargoPersonalAllows...)
	}
	return []Override{
		{Group: catalog.GroupPedantic, Lints: pedanticAllows},
		{Group: catalog.GroupNursery, Lints: nurseryAllows},
		{Group: catalog.GroupComplexity, Lints: complexityAllows},
		{Group: catalog.GroupStyle, Lints: styleAllows},
		{Group: catalog.GroupCargo, Lints: cargo},
	}
}

// RestrictionExceptions returns the restriction lints the policy warns on.
func RestrictionExceptions() []string {
	return append([]string{}, restrictionWarns...)
}
