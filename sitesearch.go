// Package sitesearch provides local search for a static, multilingual
// community-services website. A build-time indexer crawls the site's route
// table and page sources into a static JSON index; a query-time client ranks
// that index against free-text queries using synonym expansion, typo
// tolerance and editorial metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, yaml/, fs/, http/).
package sitesearch
