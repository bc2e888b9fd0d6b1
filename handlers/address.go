package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/RemoteState/localnews-server/dbHelpers"
	"github.com/RemoteState/localnews-server/middlewares"
	"github.com/RemoteState/localnews-server/models"
	"github.com/RemoteState/localnews-server/news"
	"github.com/RemoteState/localnews-server/search"
	"github.com/RemoteState/localnews-server/utils"
	"github.com/go-chi/chi"
)

// Orchestrator handles the search flow; tests swap it for one wired to fakes.
var Orchestrator = search.NewOrchestrator(dbHelpers.Addresses{}, dbHelpers.History{}, news.Generator{})

type searchRequest struct {
	Address string `json:"address"`
	UserID  int    `json:"userId"`
}

//SearchAddress POST::/api/addresses/search
func SearchAddress(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CallerID(r)

	req := searchRequest{}
	if err := utils.ParseBody(r.Body, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "unable to parse req body")
		return
	}
	if req.UserID > 0 {
		userID = req.UserID
	}

	result, err := Orchestrator.Search(userID, req.Address)
	if err != nil {
		if errors.Is(err, models.ErrEmptyAddress) {
			utils.RespondError(w, http.StatusBadRequest, err, "Address is required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Internal server error", err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.SearchResponse{
		Success:     true,
		Address:     result.Address,
		News:        result.News,
		SearchStats: result.Stats,
	})
}

//GetAllAddresses GET::/api/addresses
func GetAllAddresses(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CallerID(r)

	addresses, err := dbHelpers.SelectAllAddresses(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch addresses")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.AddressesResponse{Success: true, Addresses: addresses})
}

//GetAddressByID GET::/api/addresses/{id}
func GetAddressByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address ID")
		return
	}

	address, err := dbHelpers.SelectAddressByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, err, "Address not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch address")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.AddressResponse{Success: true, Address: address})
}

//GetStats GET::/api/addresses/stats
func GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CallerID(r)

	addressStats, err := dbHelpers.AddressSearchStats(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch address stats")
		return
	}
	historyStats, err := dbHelpers.HistoryStats(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch search stats")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.StatsResponse{
		Success: true,
		Stats: models.CombinedStats{
			Addresses: addressStats,
			Searches:  historyStats,
		},
	})
}

//GetSearchHistory GET::/api/addresses/history
func GetSearchHistory(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CallerID(r)
	limit := utils.GetQueryInt(r, "limit", 50)

	history, err := dbHelpers.SelectHistoryByUser(userID, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch search history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.HistoryResponse{Success: true, History: history})
}

//GetRecentSearches GET::/api/addresses/recent
func GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CallerID(r)
	days := utils.GetQueryInt(r, "days", 7)

	history, err := dbHelpers.SelectRecentSearches(userID, days)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to fetch recent searches")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.HistoryResponse{Success: true, History: history})
}

//DeleteAddress DELETE::/api/addresses/{id}
func DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address ID")
		return
	}

	address, err := dbHelpers.DeleteAddress(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, err, "Address not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "unable to delete address")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.DeleteAddressResponse{
		Success: true,
		Message: "Address deleted successfully",
		Address: address,
	})
}
