// Package mockservice is an in-process implementation of the objects API
// contract. The harness's own tests run the full suite against it, so that
// suite behavior can be verified without depending on the hosted service.
package mockservice

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restapidev/objects-contract-tests/framework"
	"github.com/restapidev/objects-contract-tests/objects"
)

// Service implements the objects REST contract over an in-memory store:
// GET/POST /objects, GET/PUT/DELETE /objects/{id}. Invalid create and update
// payloads get 400 with an error body; unknown ids and unrecognized routes get
// 404. It implements http.Handler.
type Service struct {
	router *httprouter.Router
	store  map[string]objects.Object
	order  []string
	logger framework.Logger
	lock   sync.Mutex
}

func New(logger framework.Logger) *Service {
	if logger == nil {
		logger = framework.NullLogger()
	}
	s := &Service{
		store:  make(map[string]objects.Object),
		logger: logger,
	}

	router := httprouter.New()
	router.GET("/objects", s.list)
	router.POST("/objects", s.create)
	router.GET("/objects/:id", s.get)
	router.PUT("/objects/:id", s.update)
	router.DELETE("/objects/:id", s.delete)
	router.NotFound = http.HandlerFunc(s.notFound)
	s.router = router

	return s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Printf("mock service: %s %s", r.Method, r.URL.Path)
	s.router.ServeHTTP(w, r)
}

// Seed inserts objects directly into the store, assigning ids, so tests can
// start from a non-empty service. It returns the assigned ids in order.
func (s *Service) Seed(objs ...objects.Object) []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	var ids []string
	for _, o := range objs {
		o.ID = uuid.NewString()
		s.store[o.ID] = o
		s.order = append(s.order, o.ID)
		ids = append(ids, o.ID)
	}
	return ids
}

// Count returns the number of stored objects.
func (s *Service) Count() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.store)
}

func (s *Service) list(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.lock.Lock()
	all := make([]objects.Object, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.store[id])
	}
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, all)
}

func (s *Service) create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	obj, err := parseObjectPayload(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	obj.ID = uuid.NewString()
	s.lock.Lock()
	s.store[obj.ID] = obj
	s.order = append(s.order, obj.ID)
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, obj)
}

func (s *Service) get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	s.lock.Lock()
	obj, ok := s.store[id]
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("object with id %s was not found", id))
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (s *Service) update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	obj, err := parseObjectPayload(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.lock.Lock()
	_, ok := s.store[id]
	if ok {
		obj.ID = id
		s.store[id] = obj
	}
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("object with id %s was not found", id))
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (s *Service) delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	s.lock.Lock()
	_, ok := s.store[id]
	if ok {
		delete(s.store, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.lock.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("object with id %s was not found", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("object with id %s has been deleted", id),
	})
}

func (s *Service) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("unrecognized route %s", r.URL.Path))
}

// parseObjectPayload validates a create or update body. The name field is
// required and must be a string; data is optional but must be a JSON object
// when present.
func parseObjectPayload(body io.Reader) (objects.Object, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return objects.Object{}, fmt.Errorf("could not read request body: %w", err)
	}
	v := ldvalue.Parse(data)
	if v.Type() != ldvalue.ObjectType {
		return objects.Object{}, fmt.Errorf("request body must be a JSON object")
	}
	name := v.GetByKey("name")
	if name.Type() != ldvalue.StringType || name.StringValue() == "" {
		return objects.Object{}, fmt.Errorf("name is required and must be a non-empty string")
	}
	objData, hasData := v.TryGetByKey("data")
	if hasData && !objData.IsNull() && objData.Type() != ldvalue.ObjectType {
		return objects.Object{}, fmt.Errorf("data must be a JSON object")
	}
	return objects.Object{Name: name.StringValue(), Data: objData}, nil
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, objects.ErrorResponse{Error: message})
}
