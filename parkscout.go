// Package parkscout provides a CLI for exploring U.S. national sites.
// It scrapes the nps.gov state directory, drills into per-state site
// listings, and looks up points of interest near a site through the
// MapQuest radius search API. Every tier of results is persisted to an
// on-disk JSON cache so repeated runs avoid re-fetching.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package parkscout
